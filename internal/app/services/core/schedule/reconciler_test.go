package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciler_DeriveWorkingSelection(t *testing.T) {
	reconciler := NewReconciler(NewCatalog(defaultScheduleConfig()))

	snapshot := Snapshot{
		"2025-08-25": NewSelection("09:00", "10:00"),
	}
	ledger := Ledger{
		"2025-08-26": NewSelection("14:00"),
	}

	t.Run("ledger entry wins over snapshot", func(t *testing.T) {
		ledger.Stage("2025-08-25", NewSelection("11:00"))
		defer ledger.Discard("2025-08-25")

		working, source := reconciler.DeriveWorkingSelection(snapshot, ledger, "2025-08-25")
		assert.Equal(t, WorkingFromLedger, source)
		assert.Equal(t, []string{"11:00"}, working.Labels())
	})

	t.Run("empty ledger entry still wins", func(t *testing.T) {
		ledger.Stage("2025-08-25", Selection{})
		defer ledger.Discard("2025-08-25")

		working, source := reconciler.DeriveWorkingSelection(snapshot, ledger, "2025-08-25")
		assert.Equal(t, WorkingFromLedger, source)
		assert.Empty(t, working)
	})

	t.Run("falls back to snapshot", func(t *testing.T) {
		working, source := reconciler.DeriveWorkingSelection(snapshot, ledger, "2025-08-25")
		assert.Equal(t, WorkingFromSnapshot, source)
		assert.Equal(t, []string{"09:00", "10:00"}, working.Labels())
	})

	t.Run("unknown date derives empty", func(t *testing.T) {
		working, source := reconciler.DeriveWorkingSelection(snapshot, ledger, "2025-09-01")
		assert.Equal(t, WorkingFromEmpty, source)
		assert.Empty(t, working)
	})

	t.Run("derived selections are copies", func(t *testing.T) {
		working, _ := reconciler.DeriveWorkingSelection(snapshot, ledger, "2025-08-25")
		working.Add("17:00")
		assert.Equal(t, []string{"09:00", "10:00"}, snapshot["2025-08-25"].Labels())
	})
}

func TestReconciler_HasDateLevelChange(t *testing.T) {
	reconciler := NewReconciler(NewCatalog(defaultScheduleConfig()))

	snapshot := Snapshot{
		"2025-08-25": NewSelection("09:00", "10:00"),
	}

	t.Run("no ledger entry means no change", func(t *testing.T) {
		assert.False(t, reconciler.HasDateLevelChange(snapshot, Ledger{}, "2025-08-25"))
	})

	t.Run("entry identical to snapshot is not a change", func(t *testing.T) {
		ledger := Ledger{}
		ledger.Stage("2025-08-25", NewSelection("10:00", "09:00"))
		assert.False(t, reconciler.HasDateLevelChange(snapshot, ledger, "2025-08-25"))
	})

	t.Run("differing entry is a change", func(t *testing.T) {
		ledger := Ledger{}
		ledger.Stage("2025-08-25", NewSelection("09:00"))
		assert.True(t, reconciler.HasDateLevelChange(snapshot, ledger, "2025-08-25"))
	})

	t.Run("empty entry against populated snapshot is a change", func(t *testing.T) {
		ledger := Ledger{}
		ledger.Stage("2025-08-25", Selection{})
		assert.True(t, reconciler.HasDateLevelChange(snapshot, ledger, "2025-08-25"))
	})

	t.Run("empty entry against empty snapshot is not a change", func(t *testing.T) {
		ledger := Ledger{}
		ledger.Stage("2025-09-01", Selection{})
		assert.False(t, reconciler.HasDateLevelChange(snapshot, ledger, "2025-09-01"))
	})
}

func TestReconciler_HasAnyPendingChange(t *testing.T) {
	reconciler := NewReconciler(NewCatalog(defaultScheduleConfig()))

	snapshot := Snapshot{
		"2025-08-25": NewSelection("09:00"),
	}

	ledger := Ledger{}
	assert.False(t, reconciler.HasAnyPendingChange(snapshot, ledger))

	ledger.Stage("2025-08-25", NewSelection("09:00"))
	assert.False(t, reconciler.HasAnyPendingChange(snapshot, ledger))

	ledger.Stage("2025-08-26", NewSelection("15:30"))
	assert.True(t, reconciler.HasAnyPendingChange(snapshot, ledger))

	// Re-staging the original selection cancels the change.
	ledger.Stage("2025-08-26", Selection{})
	ledger.Discard("2025-08-26")
	assert.False(t, reconciler.HasAnyPendingChange(snapshot, ledger))
}

func TestReconciler_FlattenForSubmission(t *testing.T) {
	reconciler := NewReconciler(NewCatalog(defaultScheduleConfig()))

	t.Run("ledger overrides replace the date wholesale", func(t *testing.T) {
		snapshot := Snapshot{
			"2025-08-25": NewSelection("09:00", "10:00"),
			"2025-08-26": NewSelection("11:00"),
		}
		ledger := Ledger{}
		ledger.Stage("2025-08-25", NewSelection("16:00"))

		times, err := reconciler.FlattenForSubmission(snapshot, ledger)
		require.NoError(t, err)

		// 09:00 and 10:00 must be gone: the staged entry is a full
		// override, not a merge.
		expected := []time.Time{
			time.Date(2025, time.August, 25, 16, 0, 0, 0, time.Local),
			time.Date(2025, time.August, 26, 11, 0, 0, 0, time.Local),
		}
		assert.Equal(t, expected, times)
	})

	t.Run("empty staged entry erases the date", func(t *testing.T) {
		snapshot := Snapshot{
			"2025-08-25": NewSelection("09:00"),
			"2025-08-26": NewSelection("11:00"),
		}
		ledger := Ledger{}
		ledger.Stage("2025-08-26", Selection{})

		times, err := reconciler.FlattenForSubmission(snapshot, ledger)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			time.Date(2025, time.August, 25, 9, 0, 0, 0, time.Local),
		}, times)
	})

	t.Run("clearing everything yields an empty, valid result", func(t *testing.T) {
		snapshot := Snapshot{
			"2025-08-25": NewSelection("09:00"),
		}
		ledger := Ledger{}
		ledger.Stage("2025-08-25", Selection{})

		times, err := reconciler.FlattenForSubmission(snapshot, ledger)
		require.NoError(t, err)
		assert.Empty(t, times)
	})

	t.Run("output is chronologically sorted across dates", func(t *testing.T) {
		snapshot := Snapshot{
			"2025-08-27": NewSelection("09:30", "09:00"),
		}
		ledger := Ledger{}
		ledger.Stage("2025-08-25", NewSelection("17:30"))

		times, err := reconciler.FlattenForSubmission(snapshot, ledger)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			time.Date(2025, time.August, 25, 17, 30, 0, 0, time.Local),
			time.Date(2025, time.August, 27, 9, 0, 0, 0, time.Local),
			time.Date(2025, time.August, 27, 9, 30, 0, 0, time.Local),
		}, times)
	})

	t.Run("flatten is deterministic", func(t *testing.T) {
		snapshot := Snapshot{
			"2025-08-25": NewSelection("09:00", "12:00"),
			"2025-08-27": NewSelection("10:30"),
		}
		ledger := Ledger{}
		ledger.Stage("2025-08-26", NewSelection("13:00", "09:00"))

		first, err := reconciler.FlattenForSubmission(snapshot, ledger)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := reconciler.FlattenForSubmission(snapshot, ledger)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}
