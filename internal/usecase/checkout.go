package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/focusin/hub/internal/infra/queue"
)

type CheckOutInput struct {
	PageID      string    `json:"pageId"`
	DisplayName string    `json:"displayName"`
	CheckInAt   time.Time `json:"checkInAt"`
	WorkSummary string    `json:"workSummary"`
}

type CheckOutOutput struct {
	CheckOutAt time.Time `json:"checkOutAt"`
	TotalHours string    `json:"totalHours"`
}

type CheckOutUseCase struct {
	Book  AttendanceBook
	Queue QueueProducerInterface
	Log   *zap.Logger

	now func() time.Time
}

func NewCheckOutUseCase(book AttendanceBook, producer QueueProducerInterface, log *zap.Logger) *CheckOutUseCase {
	return &CheckOutUseCase{
		Book:  book,
		Queue: producer,
		Log:   log,
		now:   time.Now,
	}
}

func (uc *CheckOutUseCase) Execute(ctx context.Context, input CheckOutInput) (*CheckOutOutput, error) {
	if input.PageID == "" {
		return nil, &DomainError{
			Code:    "MISSING_PAGE",
			Message: "pageId of the matching check-in is required",
		}
	}
	if input.DisplayName == "" {
		return nil, &DomainError{
			Code:    "MISSING_NAME",
			Message: "displayName is required",
		}
	}

	at := uc.now()
	total := HumanizeDuration(at.Sub(input.CheckInAt))

	if err := uc.Book.CheckOut(ctx, input.PageID, at, input.WorkSummary, total); err != nil {
		return nil, &TechnicalError{
			Code:    "ATTENDANCE_WRITE_FAILED",
			Message: "failed to record check-out: " + err.Error(),
		}
	}

	events := []queue.NotificationEvent{
		{
			Type:        queue.EventCheckOut,
			DisplayName: input.DisplayName,
			CheckOut:    at,
		},
	}
	if input.WorkSummary != "" {
		events = append(events, queue.NotificationEvent{
			Type:        queue.EventWorkSummary,
			DisplayName: input.DisplayName,
			CheckIn:     input.CheckInAt,
			CheckOut:    at,
			Summary:     input.WorkSummary,
		})
	}
	for _, event := range events {
		if err := uc.Queue.PublishNotification(ctx, event); err != nil {
			uc.Log.Warn("check-out notification not queued",
				zap.String("type", event.Type),
				zap.String("user", input.DisplayName), zap.Error(err))
		}
	}

	return &CheckOutOutput{CheckOutAt: at, TotalHours: total}, nil
}

// HumanizeDuration renders a work span the way the attendance sheet
// expects it: "8 hr 12 min", "45 min 10 sec" or "30 sec".
func HumanizeDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%d min %d sec", minutes, seconds)
	default:
		return fmt.Sprintf("%d sec", seconds)
	}
}
