package usecase

import (
	"context"
	"time"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/integration/gemini"
	"github.com/focusin/hub/internal/infra/integration/notion"
	"github.com/focusin/hub/internal/infra/mail"
	"github.com/focusin/hub/internal/infra/queue"
)

type LeadEnricher interface {
	EnrichLeads(ctx context.Context, contacts []entity.Contact) ([]gemini.EnrichedLead, error)
}

type MessageComposer interface {
	DraftMessage(ctx context.Context, input gemini.DraftInput) (*gemini.DraftOutput, error)
	ComposeMessage(ctx context.Context, input string) (string, error)
	AdjustTone(ctx context.Context, message, tone string) (string, error)
	SuggestChannels(ctx context.Context, messageContent string) ([]string, error)
}

type AttendanceBook interface {
	CheckIn(ctx context.Context, displayName, status string, at time.Time) (string, error)
	CheckOut(ctx context.Context, pageID string, at time.Time, notes, totalHours string) error
	TodayLog(ctx context.Context) ([]notion.BiometricRecord, error)
	GetTasks(ctx context.Context) ([]notion.Task, error)
}

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, event queue.NotificationEvent) error
}

type AnnouncementSender interface {
	PostAnnouncement(channel, title, message string) error
	WebhookedChannels() []string
}

type DigestMailer interface {
	SendLeadDigest(to string, data mail.DigestData, snapshot []byte) error
}
