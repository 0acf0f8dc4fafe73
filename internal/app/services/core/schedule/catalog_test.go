package schedule

import (
	"handicare-service/internal/app/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultScheduleConfig() config.Schedule {
	return config.Schedule{
		DayStartHour:   9,
		DayStartMinute: 0,
		DayEndHour:     17,
		DayEndMinute:   30,
		SlotMinutes:    30,
		LeadTimeDays:   3,
		StoreTTLDays:   7,
	}
}

func TestCatalog_Slots(t *testing.T) {
	catalog := NewCatalog(defaultScheduleConfig())

	slots := catalog.Slots()
	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "17:30", slots[17])

	assert.True(t, catalog.Contains("13:00"))
	assert.False(t, catalog.Contains("08:30"))
	assert.False(t, catalog.Contains("18:00"))
	assert.False(t, catalog.Contains("09:15"))
}

func TestCatalog_IsEditBlocked(t *testing.T) {
	catalog := NewCatalog(defaultScheduleConfig())
	now := time.Date(2025, time.August, 18, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		dateKey string
		blocked bool
	}{
		{"today is blocked", "2025-08-18", true},
		{"tomorrow is blocked", "2025-08-19", true},
		{"two days out is blocked", "2025-08-20", true},
		{"lead-time boundary day is still blocked", "2025-08-21", true},
		{"first day past the window is editable", "2025-08-22", false},
		{"well past the window is editable", "2025-09-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked, err := catalog.IsEditBlocked(tt.dateKey, now)
			require.NoError(t, err)
			assert.Equal(t, tt.blocked, blocked)
		})
	}
}

func TestCatalog_IsEditBlocked_IgnoresTimeOfDay(t *testing.T) {
	catalog := NewCatalog(defaultScheduleConfig())

	// The window is computed at day granularity, so a late-evening "now"
	// blocks exactly the same dates as an early-morning one.
	morning := time.Date(2025, time.August, 18, 0, 5, 0, 0, time.Local)
	evening := time.Date(2025, time.August, 18, 23, 55, 0, 0, time.Local)

	for _, dateKey := range []string{"2025-08-21", "2025-08-22"} {
		fromMorning, err := catalog.IsEditBlocked(dateKey, morning)
		require.NoError(t, err)
		fromEvening, err := catalog.IsEditBlocked(dateKey, evening)
		require.NoError(t, err)
		assert.Equal(t, fromMorning, fromEvening, dateKey)
	}
}

func TestCatalog_IsEditBlocked_MalformedDateKey(t *testing.T) {
	catalog := NewCatalog(defaultScheduleConfig())

	_, err := catalog.IsEditBlocked("21-08-2025", time.Now())
	assert.Error(t, err)
}

func TestCatalog_CombineDateSlot(t *testing.T) {
	catalog := NewCatalog(defaultScheduleConfig())

	combined, err := catalog.CombineDateSlot("2025-08-25", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 25, 14, 30, 0, 0, time.Local), combined)

	_, err = catalog.CombineDateSlot("2025-08-25", "03:00")
	assert.Error(t, err)
}
