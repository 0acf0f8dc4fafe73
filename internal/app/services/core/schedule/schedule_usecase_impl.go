package schedule

import (
	"context"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/dto/responses"
	"handicare-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

type scheduleUsecase struct {
	gateway    contracts.ScheduleGateway
	catalog    *Catalog
	reconciler *Reconciler
	Log        *zap.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Editor
}

func NewScheduleUsecase(gateway contracts.ScheduleGateway, catalog *Catalog, logger *zap.Logger) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			gateway:    gateway,
			catalog:    catalog,
			reconciler: NewReconciler(catalog),
			Log:        logger,
			now:        time.Now,
			sessions:   make(map[string]*Editor),
		}
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) GetEmployeeSchedule(ctx context.Context, actorID string) (*responses.EmployeeSchedule, error) {
	times, err := uc.gateway.ReadSchedule(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &responses.EmployeeSchedule{CheckedTime: formatWireTimes(times)}, nil
}

// RegisterEmployeeSchedule replaces the nurse's whole schedule in one write.
// An empty checkedTime list clears every slot.
func (uc *scheduleUsecase) RegisterEmployeeSchedule(ctx context.Context, actorID string, checkedTime []string) error {
	times, err := parseWireTimes(checkedTime)
	if err != nil {
		return err
	}
	return uc.gateway.WriteSchedule(ctx, actorID, times)
}

func (uc *scheduleUsecase) GetGuardianSchedule(ctx context.Context, seniorID int) (*responses.GuardianSchedule, error) {
	doc, err := uc.gateway.ReadGuardianRequest(ctx, seniorID)
	if err != nil {
		return nil, err
	}
	response := &responses.GuardianSchedule{SeniorID: seniorID, CheckedTime: []string{}}
	if doc != nil {
		response.CheckedTime = doc.AvailableTime
	}
	return response, nil
}

func (uc *scheduleUsecase) RegisterGuardianSchedule(ctx context.Context, guardianID string, seniorID int, checkedTime []string) error {
	times, err := parseWireTimes(checkedTime)
	if err != nil {
		return err
	}
	return uc.gateway.WriteGuardianRequest(ctx, guardianID, seniorID, times)
}

// OpenEditor starts a fresh editing session for the actor, replacing any
// previous one. The old session is closed so an in-flight submit from it can
// no longer mutate state.
func (uc *scheduleUsecase) OpenEditor(ctx context.Context, actorID string) (*responses.EditorState, error) {
	editor, err := OpenEditor(ctx, actorID, uc.catalog, uc.reconciler, uc.gateway, uc.Log, uc.now)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	if previous, ok := uc.sessions[actorID]; ok {
		previous.Close()
		uc.Log.Info("scheduleUsecase.OpenEditor replaced existing session",
			zap.String(constvars.LoggingActorIDKey, actorID),
		)
	}
	uc.sessions[actorID] = editor
	uc.mu.Unlock()

	return editor.State()
}

func (uc *scheduleUsecase) CloseEditor(actorID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if editor, ok := uc.sessions[actorID]; ok {
		editor.Close()
		delete(uc.sessions, actorID)
	}
}

func (uc *scheduleUsecase) EditorState(actorID string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.State()
}

func (uc *scheduleUsecase) EditorSelectDate(actorID string, date string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.SelectDate(date)
}

func (uc *scheduleUsecase) EditorToggleSlot(actorID string, slot string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.ToggleSlot(slot)
}

func (uc *scheduleUsecase) EditorSelectAllSlots(actorID string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.SelectAllSlots()
}

func (uc *scheduleUsecase) EditorStageCurrentDate(actorID string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.StageCurrentDate()
}

func (uc *scheduleUsecase) EditorResetCurrentDate(actorID string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.ResetCurrentDate()
}

func (uc *scheduleUsecase) EditorSubmitAll(ctx context.Context, actorID string) (*responses.EditorState, error) {
	editor, err := uc.session(actorID)
	if err != nil {
		return nil, err
	}
	return editor.SubmitAll(ctx)
}

func (uc *scheduleUsecase) session(actorID string) (*Editor, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	editor, ok := uc.sessions[actorID]
	if !ok {
		return nil, exceptions.ErrScheduleEditorNotOpen()
	}
	return editor, nil
}
