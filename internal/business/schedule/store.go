package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"kanbancal/internal/model"
)

// Store is the in-memory, date-keyed event collection. Slices held in the
// mapping are never mutated in place: every mutation writes freshly built
// slices and copied events, so snapshots handed out earlier stay valid.
type Store struct {
	mu      sync.RWMutex
	events  map[string][]*model.Event
	version uint64
	watcher chan struct{}
}

type eventsRepository interface {
	EventDates(ctx context.Context) ([]string, error)
	EventsByDate(ctx context.Context, dateKey string) ([]*model.Event, error)
}

// NewStore loads the initial snapshot from the repository. The repository is
// read once; afterwards the store is the single owner of the collection.
func NewStore(ctx context.Context, repo eventsRepository) (*Store, error) {
	s := &Store{
		events:  map[string][]*model.Event{},
		watcher: make(chan struct{}, 1),
	}

	dates, err := repo.EventDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.EventDates: %w", err)
	}

	for _, date := range dates {
		events, err := repo.EventsByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("eventsRepository.EventsByDate %v: %w", date, err)
		}

		for _, e := range events {
			if err := s.AddEvent(e, date); err != nil {
				return nil, fmt.Errorf("seed event %v on %v: %w", e.ID, date, err)
			}
		}
	}

	return s, nil
}

// EventsFor returns the time-ordered events on a date. A date without events
// yields an empty slice, never an error. Callers must treat the result as
// read-only; mutations always replace the stored slice.
func (s *Store) EventsFor(dateKey string) []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.events[dateKey]
}

// Dates returns the sorted date keys that currently hold at least one event.
func (s *Store) Dates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]string, 0, len(s.events))
	for date, events := range s.events {
		if len(events) > 0 {
			res = append(res, date)
		}
	}
	sort.Strings(res)

	return res
}

// Version increases by one on every successful mutation, so consumers can
// detect changes without comparing snapshots.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Watch returns a channel that receives a coalesced signal after each
// mutation. A single channel is shared between all callers.
func (s *Store) Watch() <-chan struct{} {
	return s.watcher
}

// markChanged must be called with the write lock held.
func (s *Store) markChanged() {
	s.version++
	select {
	case s.watcher <- struct{}{}:
	default:
	}
}
