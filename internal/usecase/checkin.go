package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/focusin/hub/internal/infra/queue"
)

type CheckInInput struct {
	DisplayName string `json:"displayName"`
	Status      string `json:"status"`
}

type CheckInOutput struct {
	PageID    string    `json:"pageId"`
	CheckInAt time.Time `json:"checkInAt"`
}

type CheckInUseCase struct {
	Book  AttendanceBook
	Queue QueueProducerInterface
	Log   *zap.Logger

	now func() time.Time
}

func NewCheckInUseCase(book AttendanceBook, producer QueueProducerInterface, log *zap.Logger) *CheckInUseCase {
	return &CheckInUseCase{
		Book:  book,
		Queue: producer,
		Log:   log,
		now:   time.Now,
	}
}

func (uc *CheckInUseCase) Execute(ctx context.Context, input CheckInInput) (*CheckInOutput, error) {
	if input.DisplayName == "" {
		return nil, &DomainError{
			Code:    "MISSING_NAME",
			Message: "displayName is required",
		}
	}
	status := input.Status
	if status == "" {
		status = "Work"
	}

	at := uc.now()
	pageID, err := uc.Book.CheckIn(ctx, input.DisplayName, status, at)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "ATTENDANCE_WRITE_FAILED",
			Message: "failed to record check-in: " + err.Error(),
		}
	}

	event := queue.NotificationEvent{
		Type:        queue.EventCheckIn,
		DisplayName: input.DisplayName,
		CheckIn:     at,
	}
	if err := uc.Queue.PublishNotification(ctx, event); err != nil {
		// The check-in itself is recorded; the announcement is best effort.
		uc.Log.Warn("check-in notification not queued",
			zap.String("user", input.DisplayName), zap.Error(err))
	}

	return &CheckInOutput{PageID: pageID, CheckInAt: at}, nil
}
