package schedule

import (
	"handicare-service/internal/pkg/utils"
	"sort"
	"time"
)

// Selection is the set of slot labels (HH:mm) chosen for a single date.
type Selection map[string]struct{}

func NewSelection(labels ...string) Selection {
	s := make(Selection, len(labels))
	for _, label := range labels {
		s[label] = struct{}{}
	}
	return s
}

func (s Selection) Has(label string) bool {
	_, ok := s[label]
	return ok
}

func (s Selection) Add(label string) {
	s[label] = struct{}{}
}

func (s Selection) Remove(label string) {
	delete(s, label)
}

func (s Selection) Clone() Selection {
	clone := make(Selection, len(s))
	for label := range s {
		clone[label] = struct{}{}
	}
	return clone
}

func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for label := range s {
		if _, ok := other[label]; !ok {
			return false
		}
	}
	return true
}

// Labels returns the slot labels in chronological order. HH:mm labels sort
// chronologically under plain string ordering.
func (s Selection) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Snapshot is the server-confirmed schedule grouped by date key (YYYY-MM-DD).
// Dates with no chosen slots have no entry.
type Snapshot map[string]Selection

// BuildSnapshot groups concrete schedule times into per-date slot label sets.
func BuildSnapshot(times []time.Time) Snapshot {
	snapshot := make(Snapshot)
	for _, t := range times {
		dateKey := utils.FormatDateKey(t)
		if _, ok := snapshot[dateKey]; !ok {
			snapshot[dateKey] = make(Selection)
		}
		snapshot[dateKey].Add(t.Format(utils.SlotLabelLayout))
	}
	return snapshot
}

func (s Snapshot) Clone() Snapshot {
	clone := make(Snapshot, len(s))
	for dateKey, sel := range s {
		clone[dateKey] = sel.Clone()
	}
	return clone
}

// SelectionFor returns the confirmed selection for a date, or an empty set.
func (s Snapshot) SelectionFor(dateKey string) Selection {
	if sel, ok := s[dateKey]; ok {
		return sel
	}
	return Selection{}
}

// Ledger holds staged, not-yet-submitted edits. Each entry is a full override
// of one date's selection: staging replaces the date's slots wholesale, and an
// empty entry means "clear every slot on this date".
type Ledger map[string]Selection

func (l Ledger) Stage(dateKey string, sel Selection) {
	l[dateKey] = sel.Clone()
}

func (l Ledger) Discard(dateKey string) {
	delete(l, dateKey)
}

func (l Ledger) Entry(dateKey string) (Selection, bool) {
	sel, ok := l[dateKey]
	return sel, ok
}

func (l Ledger) Clone() Ledger {
	clone := make(Ledger, len(l))
	for dateKey, sel := range l {
		clone[dateKey] = sel.Clone()
	}
	return clone
}

// DateKeys returns the staged date keys in ascending order.
func (l Ledger) DateKeys() []string {
	keys := make([]string, 0, len(l))
	for dateKey := range l {
		keys = append(keys, dateKey)
	}
	sort.Strings(keys)
	return keys
}
