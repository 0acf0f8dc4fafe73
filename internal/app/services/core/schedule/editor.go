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

// Editor is one actor's live schedule-editing session. It owns the three
// layers of the edit model: the server-confirmed snapshot, the staged ledger
// and the ephemeral working selection for the currently viewed date.
//
// All operations lock the session. SubmitAll releases the lock for the
// duration of the gateway write so the session stays inspectable while a save
// is in flight; concurrent edits and a second submit are rejected through the
// submitting flag.
type Editor struct {
	mu         sync.Mutex
	actorID    string
	catalog    *Catalog
	reconciler *Reconciler
	gateway    contracts.ScheduleGateway
	log        *zap.Logger
	now        func() time.Time

	snapshot     Snapshot
	ledger       Ledger
	selectedDate string
	working      Selection
	submitting   bool
	closed       bool
}

// OpenEditor loads a fresh snapshot from the gateway and returns a session in
// the idle state with no date selected and an empty ledger.
func OpenEditor(ctx context.Context, actorID string, catalog *Catalog, reconciler *Reconciler, gateway contracts.ScheduleGateway, logger *zap.Logger, now func() time.Time) (*Editor, error) {
	times, err := gateway.ReadSchedule(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &Editor{
		actorID:    actorID,
		catalog:    catalog,
		reconciler: reconciler,
		gateway:    gateway,
		log:        logger,
		now:        now,
		snapshot:   BuildSnapshot(times),
		ledger:     make(Ledger),
	}, nil
}

// SelectDate switches the viewed date and derives its working selection from
// the ledger, then the snapshot, then the empty set. Unstaged edits on the
// previously viewed date are discarded. Blocked dates can be selected for
// viewing; only mutations are rejected.
func (e *Editor) SelectDate(dateKey string) (*responses.EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureEditable(); err != nil {
		return nil, err
	}
	if _, err := e.catalog.IsEditBlocked(dateKey, e.now()); err != nil {
		return nil, err
	}

	working, source := e.reconciler.DeriveWorkingSelection(e.snapshot, e.ledger, dateKey)
	e.selectedDate = dateKey
	e.working = working

	e.log.Debug("editor.SelectDate derived working selection",
		zap.String(constvars.LoggingActorIDKey, e.actorID),
		zap.String(constvars.LoggingDateKey, dateKey),
		zap.String("working_source", string(source)),
	)
	return e.view(), nil
}

// ToggleSlot flips one slot on the currently viewed date. The date must be
// outside the lead-time window and the slot must belong to the catalog.
func (e *Editor) ToggleSlot(label string) (*responses.EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureMutable(); err != nil {
		return nil, err
	}
	if !e.catalog.Contains(label) {
		return nil, exceptions.ErrScheduleUnknownSlot(label)
	}

	if e.working.Has(label) {
		e.working.Remove(label)
	} else {
		e.working.Add(label)
	}
	return e.view(), nil
}

// SelectAllSlots fills the working selection with the entire catalog, or
// clears it when every slot is already chosen.
func (e *Editor) SelectAllSlots() (*responses.EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureMutable(); err != nil {
		return nil, err
	}

	if len(e.working) == len(e.catalog.Slots()) {
		e.working = Selection{}
	} else {
		e.working = NewSelection(e.catalog.Slots()...)
	}
	return e.view(), nil
}

// StageCurrentDate records the working selection as the ledger override for
// the viewed date. The entry replaces the date's slots wholesale; staging an
// empty selection stages the removal of every slot on that date.
func (e *Editor) StageCurrentDate() (*responses.EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureMutable(); err != nil {
		return nil, err
	}

	e.ledger.Stage(e.selectedDate, e.working)
	e.log.Debug("editor.StageCurrentDate staged date override",
		zap.String(constvars.LoggingActorIDKey, e.actorID),
		zap.String(constvars.LoggingDateKey, e.selectedDate),
		zap.Int("slot_count", len(e.working)),
	)
	return e.view(), nil
}

// ResetCurrentDate clears the working selection for the viewed date. The
// ledger entry for that date, if any, stays in place until the actor stages
// again.
func (e *Editor) ResetCurrentDate() (*responses.EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureMutable(); err != nil {
		return nil, err
	}

	e.working = Selection{}
	return e.view(), nil
}

// SubmitAll flattens snapshot plus ledger into the complete new schedule and
// writes it through the gateway as a full replacement. Exactly one submission
// may be in flight; a second call is rejected with a conflict. On success the
// flattened result becomes the new snapshot and the ledger is cleared. On
// gateway failure the ledger is kept intact so the actor can retry.
func (e *Editor) SubmitAll(ctx context.Context) (*responses.EditorState, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, exceptions.ErrScheduleEditorNotOpen()
	}
	if e.submitting {
		e.mu.Unlock()
		return nil, exceptions.ErrScheduleSubmitInFlight()
	}
	if !e.reconciler.HasAnyPendingChange(e.snapshot, e.ledger) {
		defer e.mu.Unlock()
		return e.view(), nil
	}

	times, err := e.reconciler.FlattenForSubmission(e.snapshot, e.ledger)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.submitting = true
	e.mu.Unlock()

	writeErr := e.gateway.WriteSchedule(ctx, e.actorID, times)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitting = false
	if e.closed {
		return nil, exceptions.ErrScheduleEditorNotOpen()
	}
	if writeErr != nil {
		e.log.Warn("editor.SubmitAll gateway write failed, staged edits kept",
			zap.String(constvars.LoggingActorIDKey, e.actorID),
			zap.Error(writeErr),
		)
		return nil, writeErr
	}

	e.snapshot = BuildSnapshot(times)
	e.ledger = make(Ledger)
	if e.selectedDate != "" {
		working, _ := e.reconciler.DeriveWorkingSelection(e.snapshot, e.ledger, e.selectedDate)
		e.working = working
	}
	e.log.Info("editor.SubmitAll schedule replaced",
		zap.String(constvars.LoggingActorIDKey, e.actorID),
		zap.Int("slot_count", len(times)),
	)
	return e.view(), nil
}

// Close marks the session closed. A submission already in flight completes
// against the gateway but no longer mutates the session.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

// State returns the current session view.
func (e *Editor) State() (*responses.EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, exceptions.ErrScheduleEditorNotOpen()
	}
	return e.view(), nil
}

func (e *Editor) ensureEditable() error {
	if e.closed {
		return exceptions.ErrScheduleEditorNotOpen()
	}
	if e.submitting {
		return exceptions.ErrScheduleSubmitInFlight()
	}
	return nil
}

// ensureMutable extends ensureEditable with the per-date policy checks shared
// by every mutation on the viewed date.
func (e *Editor) ensureMutable() error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	if e.selectedDate == "" {
		return exceptions.ErrScheduleNoDateSelected()
	}
	blocked, err := e.catalog.IsEditBlocked(e.selectedDate, e.now())
	if err != nil {
		return err
	}
	if blocked {
		return exceptions.ErrScheduleEditBlocked(e.selectedDate)
	}
	return nil
}

func (e *Editor) view() *responses.EditorState {
	staged := make(map[string][]string, len(e.ledger))
	for _, dateKey := range e.ledger.DateKeys() {
		staged[dateKey] = e.ledger[dateKey].Labels()
	}

	var workingLabels []string
	var editBlocked, currentDateDirty bool
	if e.selectedDate != "" {
		workingLabels = e.working.Labels()
		editBlocked, _ = e.catalog.IsEditBlocked(e.selectedDate, e.now())
		baseline, _ := e.reconciler.DeriveWorkingSelection(e.snapshot, e.ledger, e.selectedDate)
		currentDateDirty = !e.working.Equal(baseline)
	}

	hasPending := e.reconciler.HasAnyPendingChange(e.snapshot, e.ledger)

	// Only staged work makes the session dirty; unstaged edits on the viewed
	// date are reported through CurrentDateDirty.
	state := constvars.EditorStateIdle
	switch {
	case e.submitting:
		state = constvars.EditorStateSubmitting
	case hasPending:
		state = constvars.EditorStateDirty
	}

	return &responses.EditorState{
		SelectedDate:     e.selectedDate,
		WorkingSelection: workingLabels,
		Staged:           staged,
		State:            state,
		EditBlocked:      editBlocked,
		CurrentDateDirty: currentDateDirty,
		HasPendingChange: hasPending,
		SlotCatalog:      e.catalog.Slots(),
	}
}
