package schedule

import (
	"handicare-service/internal/app/config"
	"handicare-service/internal/pkg/exceptions"
	"handicare-service/internal/pkg/utils"
	"time"
)

// Catalog is the fixed set of offerable consultation slots for any date,
// together with the lead-time policy deciding which dates are still editable.
// With the default configuration it spans 09:00 through 17:30 in half-hour
// steps, 18 slots total.
type Catalog struct {
	slots        []string
	index        map[string]int
	leadTimeDays int
}

func NewCatalog(scheduleConfig config.Schedule) *Catalog {
	start := time.Date(2000, time.January, 1, scheduleConfig.DayStartHour, scheduleConfig.DayStartMinute, 0, 0, time.UTC)
	end := time.Date(2000, time.January, 1, scheduleConfig.DayEndHour, scheduleConfig.DayEndMinute, 0, 0, time.UTC)
	step := time.Duration(scheduleConfig.SlotMinutes) * time.Minute

	catalog := &Catalog{
		index:        make(map[string]int),
		leadTimeDays: scheduleConfig.LeadTimeDays,
	}
	for t := start; !t.After(end); t = t.Add(step) {
		label := t.Format(utils.SlotLabelLayout)
		catalog.index[label] = len(catalog.slots)
		catalog.slots = append(catalog.slots, label)
	}
	return catalog
}

// Slots returns every slot label in chronological order. Callers must not
// mutate the returned slice.
func (c *Catalog) Slots() []string {
	return c.slots
}

func (c *Catalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

func (c *Catalog) LeadTimeDays() int {
	return c.leadTimeDays
}

// IsEditBlocked reports whether the given date key falls inside the lead-time
// window relative to now. The comparison is at day granularity and the
// boundary day is inclusive: with a three-day lead time, the date exactly
// three days out is still blocked and only day four onward is editable.
func (c *Catalog) IsEditBlocked(dateKey string, now time.Time) (bool, error) {
	date, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return false, err
	}
	boundary := utils.StartOfDay(now).AddDate(0, 0, c.leadTimeDays)
	return !utils.StartOfDay(date).After(boundary), nil
}

// CombineDateSlot builds the concrete schedule time for a date key and slot
// label. The slot must belong to the catalog.
func (c *Catalog) CombineDateSlot(dateKey, label string) (time.Time, error) {
	if !c.Contains(label) {
		return time.Time{}, exceptions.ErrScheduleUnknownSlot(label)
	}
	date, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return time.Time{}, err
	}
	slot, err := time.Parse(utils.SlotLabelLayout, label)
	if err != nil {
		return time.Time{}, exceptions.ErrScheduleUnknownSlot(label)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), slot.Hour(), slot.Minute(), 0, 0, date.Location()), nil
}
