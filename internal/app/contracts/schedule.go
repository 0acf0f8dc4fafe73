package contracts

import (
	"context"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/dto/responses"
	"time"
)

// ScheduleGateway persists an actor's consultation availability with
// full-replace semantics: WriteSchedule replaces the whole schedule, and an
// empty slice is a valid write meaning "delete everything".
type ScheduleGateway interface {
	ReadSchedule(ctx context.Context, actorID string) ([]time.Time, error)
	WriteSchedule(ctx context.Context, actorID string, times []time.Time) error

	ReadGuardianRequest(ctx context.Context, seniorID int) (*models.GuardianRequestData, error)
	WriteGuardianRequest(ctx context.Context, guardianID string, seniorID int, times []time.Time) error
}

type ScheduleUsecase interface {
	GetEmployeeSchedule(ctx context.Context, actorID string) (*responses.EmployeeSchedule, error)
	RegisterEmployeeSchedule(ctx context.Context, actorID string, checkedTime []string) error
	GetGuardianSchedule(ctx context.Context, seniorID int) (*responses.GuardianSchedule, error)
	RegisterGuardianSchedule(ctx context.Context, guardianID string, seniorID int, checkedTime []string) error

	// Editor session operations. One session per actor; OpenEditor replaces
	// any previous session after loading a fresh snapshot from the gateway.
	OpenEditor(ctx context.Context, actorID string) (*responses.EditorState, error)
	CloseEditor(actorID string)
	EditorState(actorID string) (*responses.EditorState, error)
	EditorSelectDate(actorID string, date string) (*responses.EditorState, error)
	EditorToggleSlot(actorID string, slot string) (*responses.EditorState, error)
	EditorSelectAllSlots(actorID string) (*responses.EditorState, error)
	EditorStageCurrentDate(actorID string) (*responses.EditorState, error)
	EditorResetCurrentDate(actorID string) (*responses.EditorState, error)
	EditorSubmitAll(ctx context.Context, actorID string) (*responses.EditorState, error)
}
