package schedule

import (
	"fmt"

	"kanbancal/internal/model"
)

// RemoveEvent deletes an event from a day, leaving the remaining order
// unchanged.
func (s *Store) RemoveEvent(eventID, dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.events[dateKey]
	idx := findEvent(events, eventID)
	if idx == -1 {
		return fmt.Errorf("%w: %v on %v", model.ErrEventNotFound, eventID, dateKey)
	}

	s.events[dateKey] = removeAt(events, idx)
	s.markChanged()

	return nil
}
