package schedule

import (
	"sort"
	"time"
)

// WorkingSource names which layer a derived working selection came from.
type WorkingSource string

const (
	WorkingFromLedger   WorkingSource = "LEDGER"
	WorkingFromSnapshot WorkingSource = "SNAPSHOT"
	WorkingFromEmpty    WorkingSource = "EMPTY"
)

// Reconciler derives effective per-date selections from the confirmed
// snapshot and the staged ledger. All methods are pure: they never mutate
// their inputs and always return fresh sets.
type Reconciler struct {
	Catalog *Catalog
}

func NewReconciler(catalog *Catalog) *Reconciler {
	return &Reconciler{Catalog: catalog}
}

// DeriveWorkingSelection resolves the selection shown for a date. Precedence
// is strict: a staged ledger entry wins outright (even an empty one), then the
// snapshot, then the empty set.
func (r *Reconciler) DeriveWorkingSelection(snapshot Snapshot, ledger Ledger, dateKey string) (Selection, WorkingSource) {
	if staged, ok := ledger.Entry(dateKey); ok {
		return staged.Clone(), WorkingFromLedger
	}
	if confirmed, ok := snapshot[dateKey]; ok {
		return confirmed.Clone(), WorkingFromSnapshot
	}
	return Selection{}, WorkingFromEmpty
}

// HasDateLevelChange reports whether the staged entry for a date differs from
// the confirmed snapshot. A ledger entry identical to the snapshot is not a
// change; the comparison is symmetric, so re-staging the original selection
// cancels the change.
func (r *Reconciler) HasDateLevelChange(snapshot Snapshot, ledger Ledger, dateKey string) bool {
	staged, ok := ledger.Entry(dateKey)
	if !ok {
		return false
	}
	return !staged.Equal(snapshot.SelectionFor(dateKey))
}

// HasAnyPendingChange reports whether any staged date differs from the
// snapshot.
func (r *Reconciler) HasAnyPendingChange(snapshot Snapshot, ledger Ledger) bool {
	for dateKey := range ledger {
		if r.HasDateLevelChange(snapshot, ledger, dateKey) {
			return true
		}
	}
	return false
}

// FlattenForSubmission merges the snapshot and ledger into the complete
// schedule to submit: every date from either layer, ledger overrides applied,
// as concrete times in ascending order. An empty staged entry erases the
// date. An empty result is valid and means "clear the whole schedule".
func (r *Reconciler) FlattenForSubmission(snapshot Snapshot, ledger Ledger) ([]time.Time, error) {
	dateKeys := make(map[string]struct{}, len(snapshot)+len(ledger))
	for dateKey := range snapshot {
		dateKeys[dateKey] = struct{}{}
	}
	for dateKey := range ledger {
		dateKeys[dateKey] = struct{}{}
	}

	var times []time.Time
	for dateKey := range dateKeys {
		effective, _ := r.DeriveWorkingSelection(snapshot, ledger, dateKey)
		for _, label := range effective.Labels() {
			t, err := r.Catalog.CombineDateSlot(dateKey, label)
			if err != nil {
				return nil, err
			}
			times = append(times, t)
		}
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}
