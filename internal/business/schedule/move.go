package schedule

import (
	"fmt"

	"kanbancal/internal/model"
	"kanbancal/internal/pkg/timecode"
)

// MoveEvent relocates an event between dates, keeping the target day
// time-ordered and refreshing the event's FullDate. Moving onto the same
// date is a no-op. The move is all-or-nothing: everything is validated
// before the mapping is touched.
func (s *Store) MoveEvent(eventID, sourceKey, targetKey string) error {
	if sourceKey == targetKey {
		return nil
	}

	fullDate, err := model.FullDate(targetKey)
	if err != nil {
		return fmt.Errorf("target date: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.events[sourceKey]
	idx := findEvent(source, eventID)
	if idx == -1 {
		return fmt.Errorf("%w: %v on %v", model.ErrEventNotFound, eventID, sourceKey)
	}

	event := source[idx].Copy()
	event.FullDate = fullDate

	target, err := insertOrdered(s.events[targetKey], event)
	if err != nil {
		return fmt.Errorf("insert into %v: %w", targetKey, err)
	}

	s.events[sourceKey] = removeAt(source, idx)
	s.events[targetKey] = target
	s.markChanged()

	return nil
}

// InsertPosition answers at which index an event would land on a date,
// without mutating anything. Used for drop previews while a drag hovers
// over a day column.
func (s *Store) InsertPosition(event *model.Event, dateKey string) (int, error) {
	timeValue, err := timecode.Minutes(event.Time)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return insertIndex(s.events[dateKey], timeValue)
}
