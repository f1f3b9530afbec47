package schedule

import (
	"fmt"

	"kanbancal/internal/model"
)

// AddEvent inserts an event into a day at its time-ordered position. Event
// ids are unique across the whole store, not just within one day. The
// event's FullDate is derived from the date key when it does not carry one.
func (s *Store) AddEvent(event *model.Event, dateKey string) error {
	stored := event.Copy()
	if stored.FullDate == "" {
		fullDate, err := model.FullDate(dateKey)
		if err != nil {
			return fmt.Errorf("date key: %w", err)
		}
		stored.FullDate = fullDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for date, events := range s.events {
		if findEvent(events, stored.ID) != -1 {
			return fmt.Errorf("%w: event %v on %v", model.ErrAlreadyExists, stored.ID, date)
		}
	}

	events, err := insertOrdered(s.events[dateKey], stored)
	if err != nil {
		return fmt.Errorf("insert into %v: %w", dateKey, err)
	}

	s.events[dateKey] = events
	s.markChanged()

	return nil
}
