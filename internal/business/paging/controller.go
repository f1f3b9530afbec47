package paging

import (
	"time"

	"kanbancal/internal/model"
)

type eventSource interface {
	EventsFor(dateKey string) []*model.Event
}

// Controller tracks which day and week the view shows, plus the direction
// of the last transition for the presentation layer to animate. All
// transitions are total: there is no invalid navigation state.
type Controller struct {
	current   time.Time
	weekStart time.Time
	direction int

	events eventSource
}

func NewController(initial time.Time, events eventSource) *Controller {
	day := midnight(initial)
	return &Controller{
		current:   day,
		weekStart: model.StartOfWeek(day),
		events:    events,
	}
}

// SelectDate focuses a day. The week window only moves when the selected
// date falls outside the currently displayed week; picking another day of
// the same week leaves the window alone.
func (c *Controller) SelectDate(date time.Time) {
	day := midnight(date)

	switch {
	case day.After(c.current):
		c.direction = -1
	case day.Before(c.current):
		c.direction = 1
	default:
		c.direction = 0
	}

	c.current = day
	if !model.SameWeek(day, c.weekStart) {
		c.weekStart = model.StartOfWeek(day)
	}
}

// ChangeWeek shifts the window by whole weeks; delta +1 means the previous
// week, -1 the next. The focused day keeps its weekday offset within the
// new week.
func (c *Controller) ChangeWeek(delta int) {
	shift := 7
	if delta > 0 {
		shift = -7
	}

	offset := int(c.current.Sub(c.weekStart).Hours() / 24)
	c.weekStart = c.weekStart.AddDate(0, 0, shift)
	c.current = c.weekStart.AddDate(0, 0, offset)

	if delta > 0 {
		c.direction = 1
	} else {
		c.direction = -1
	}
}

// Swipe moves the focus one day; direction +1 means the previous day, -1
// the next. The week window follows when the new day crosses a boundary.
func (c *Controller) Swipe(direction int) {
	days := 1
	if direction > 0 {
		days = -1
	}

	c.current = c.current.AddDate(0, 0, days)
	if direction > 0 {
		c.direction = 1
	} else {
		c.direction = -1
	}

	if !model.SameWeek(c.current, c.weekStart) {
		c.weekStart = model.StartOfWeek(c.current)
	}
}

// CurrentDate returns the focused day at midnight.
func (c *Controller) CurrentDate() time.Time {
	return c.current
}

// CurrentKey returns the focused day as a date key.
func (c *Controller) CurrentKey() string {
	return model.DateKey(c.current)
}

// WeekStart returns the Monday of the displayed week.
func (c *Controller) WeekStart() time.Time {
	return c.weekStart
}

// Direction reports the last transition direction: -1, 0 or +1. Purely
// informational.
func (c *Controller) Direction() int {
	return c.direction
}

// WeekDates returns the seven dates of the displayed week.
func (c *Controller) WeekDates() []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = c.weekStart.AddDate(0, 0, i)
	}

	return dates
}

// HasEvents reports whether a day holds at least one event.
func (c *Controller) HasEvents(date time.Time) bool {
	return len(c.events.EventsFor(model.DateKey(date))) > 0
}

// midnight normalizes to UTC so week arithmetic never crosses DST or zone
// offsets.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
