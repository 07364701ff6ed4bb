package usecase

import (
	"context"

	"github.com/focusin/hub/internal/infra/integration/notion"
)

// AttendanceLogUseCase surfaces the read side of the biometrics sheet:
// today's check-in rows and the team task board.
type AttendanceLogUseCase struct {
	Book AttendanceBook
}

func NewAttendanceLogUseCase(book AttendanceBook) *AttendanceLogUseCase {
	return &AttendanceLogUseCase{Book: book}
}

func (uc *AttendanceLogUseCase) TodayLog(ctx context.Context) ([]notion.BiometricRecord, error) {
	records, err := uc.Book.TodayLog(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "ATTENDANCE_READ_FAILED",
			Message: "failed to read today's attendance: " + err.Error(),
		}
	}
	return records, nil
}

func (uc *AttendanceLogUseCase) Tasks(ctx context.Context) ([]notion.Task, error) {
	tasks, err := uc.Book.GetTasks(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "TASKS_READ_FAILED",
			Message: "failed to read the task board: " + err.Error(),
		}
	}
	return tasks, nil
}
