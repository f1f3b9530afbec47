package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanbancal/internal/model"
	"kanbancal/internal/pkg/timecode"
)

type repoStub struct {
	events map[string][]*model.Event
	order  []string
}

func (s repoStub) EventDates(_ context.Context) ([]string, error) {
	return s.order, nil
}

func (s repoStub) EventsByDate(_ context.Context, dateKey string) ([]*model.Event, error) {
	return s.events[dateKey], nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	stub := repoStub{
		order: []string{"2024-06-10", "2024-06-11"},
		events: map[string][]*model.Event{
			"2024-06-10": {
				{ID: "event-1", Title: "Coffee with Alex", Time: "09:00 AM"},
				{ID: "event-2", Title: "Team Standup", Time: "02:00 PM"},
			},
			"2024-06-11": {
				{ID: "event-3", Title: "Yoga Session", Time: "12:00 PM"},
			},
		},
	}

	store, err := NewStore(context.Background(), stub)
	require.NoError(t, err)

	return store
}

func totalCount(s *Store) int {
	total := 0
	for _, date := range s.Dates() {
		total += len(s.EventsFor(date))
	}
	return total
}

func assertOrdered(t *testing.T, events []*model.Event) {
	t.Helper()

	prev := -1
	for _, e := range events {
		v, err := timecode.Minutes(e.Time)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev, "events out of order at %v", e.ID)
		prev = v
	}
}

func TestNewStoreSeedsOrderedWithFullDates(t *testing.T) {
	store := newTestStore(t)

	events := store.EventsFor("2024-06-10")
	require.Len(t, events, 2)
	assertOrdered(t, events)
	assert.Equal(t, "Monday, June 10, 2024", events[0].FullDate)
}

func TestAddEventKeepsTimeOrder(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddEvent(&model.Event{ID: "a", Time: "11:00 AM"}, "2024-06-10"))
	require.NoError(t, store.AddEvent(&model.Event{ID: "b", Time: "08:00 AM"}, "2024-06-10"))
	require.NoError(t, store.AddEvent(&model.Event{ID: "c", Time: "10:00 PM"}, "2024-06-10"))

	events := store.EventsFor("2024-06-10")
	require.Len(t, events, 5)
	assertOrdered(t, events)
	assert.Equal(t, "b", events[0].ID)
	assert.Equal(t, "c", events[4].ID)
}

func TestAddEventEqualTimesKeepInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddEvent(&model.Event{ID: "first", Time: "09:00 AM"}, "2024-06-12"))
	require.NoError(t, store.AddEvent(&model.Event{ID: "second", Time: "09:00 AM"}, "2024-06-12"))
	require.NoError(t, store.AddEvent(&model.Event{ID: "third", Time: "09:00 AM"}, "2024-06-12"))

	events := store.EventsFor("2024-06-12")
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].ID)
	assert.Equal(t, "second", events[1].ID)
	assert.Equal(t, "third", events[2].ID)
}

func TestAddEventRejectsDuplicateID(t *testing.T) {
	store := newTestStore(t)

	err := store.AddEvent(&model.Event{ID: "event-1", Time: "10:00 AM"}, "2024-06-13")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAddEventRejectsBadTime(t *testing.T) {
	store := newTestStore(t)

	err := store.AddEvent(&model.Event{ID: "bad", Time: "25:00"}, "2024-06-10")
	assert.ErrorIs(t, err, model.ErrInvalidTimeFormat)
	assert.Len(t, store.EventsFor("2024-06-10"), 2)
}

func TestMoveEventRelocatesAndUpdatesFullDate(t *testing.T) {
	store := newTestStore(t)
	before := totalCount(store)

	require.NoError(t, store.MoveEvent("event-1", "2024-06-10", "2024-06-11"))

	assert.Equal(t, before, totalCount(store))

	source := store.EventsFor("2024-06-10")
	require.Len(t, source, 1)
	assert.Equal(t, "event-2", source[0].ID)

	target := store.EventsFor("2024-06-11")
	require.Len(t, target, 2)
	assertOrdered(t, target)
	assert.Equal(t, "event-1", target[0].ID)
	assert.Equal(t, "Tuesday, June 11, 2024", target[0].FullDate)
}

func TestMoveEventScenario(t *testing.T) {
	stub := repoStub{
		order: []string{"2024-06-10"},
		events: map[string][]*model.Event{
			"2024-06-10": {
				{ID: "morning", Time: "09:00 AM"},
				{ID: "afternoon", Time: "02:00 PM"},
			},
		},
	}
	store, err := NewStore(context.Background(), stub)
	require.NoError(t, err)

	require.NoError(t, store.MoveEvent("morning", "2024-06-10", "2024-06-11"))

	remaining := store.EventsFor("2024-06-10")
	require.Len(t, remaining, 1)
	assert.Equal(t, "afternoon", remaining[0].ID)

	moved := store.EventsFor("2024-06-11")
	require.Len(t, moved, 1)
	assert.Equal(t, "morning", moved[0].ID)
	assert.Equal(t, "Tuesday, June 11, 2024", moved[0].FullDate)
}

func TestMoveEventSameDateIsNoOp(t *testing.T) {
	store := newTestStore(t)
	before := store.EventsFor("2024-06-10")
	version := store.Version()

	require.NoError(t, store.MoveEvent("event-1", "2024-06-10", "2024-06-10"))

	after := store.EventsFor("2024-06-10")
	require.Len(t, after, len(before))
	for i := range before {
		assert.Same(t, before[i], after[i])
	}
	assert.Equal(t, version, store.Version())
}

func TestMoveEventNotFoundLeavesStoreUnchanged(t *testing.T) {
	store := newTestStore(t)
	version := store.Version()

	err := store.MoveEvent("missing-id", "2024-06-10", "2024-06-11")
	assert.ErrorIs(t, err, model.ErrEventNotFound)

	assert.Len(t, store.EventsFor("2024-06-10"), 2)
	assert.Len(t, store.EventsFor("2024-06-11"), 1)
	assert.Equal(t, version, store.Version())
}

func TestMoveEventBadTargetDate(t *testing.T) {
	store := newTestStore(t)

	err := store.MoveEvent("event-1", "2024-06-10", "not-a-date")
	assert.ErrorIs(t, err, model.ErrInvalidDateRange)
	assert.Len(t, store.EventsFor("2024-06-10"), 2)
}

func TestMoveEventCopiesInsteadOfMutating(t *testing.T) {
	store := newTestStore(t)
	held := store.EventsFor("2024-06-10")[0]
	originalFullDate := held.FullDate

	require.NoError(t, store.MoveEvent("event-1", "2024-06-10", "2024-06-11"))

	// The reference taken before the move is untouched; the store holds a
	// copy with the refreshed date.
	assert.Equal(t, originalFullDate, held.FullDate)
	assert.NotSame(t, held, store.EventsFor("2024-06-11")[0])
}

func TestRemoveEvent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RemoveEvent("event-1", "2024-06-10"))

	events := store.EventsFor("2024-06-10")
	require.Len(t, events, 1)
	assert.Equal(t, "event-2", events[0].ID)

	err := store.RemoveEvent("missing-id", "2024-06-10")
	assert.ErrorIs(t, err, model.ErrEventNotFound)
	assert.Len(t, store.EventsFor("2024-06-10"), 1)
}

func TestEventsForUnknownDateIsEmpty(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.EventsFor("1999-01-01"))
}

func TestVersionAndWatchSignalMutations(t *testing.T) {
	store := newTestStore(t)
	version := store.Version()

	// Drain any signal left over from seeding.
	select {
	case <-store.Watch():
	default:
	}

	require.NoError(t, store.MoveEvent("event-1", "2024-06-10", "2024-06-11"))

	assert.Equal(t, version+1, store.Version())
	select {
	case <-store.Watch():
	default:
		t.Fatal("expected change signal after mutation")
	}
}

func TestInsertPosition(t *testing.T) {
	store := newTestStore(t)

	idx, err := store.InsertPosition(&model.Event{ID: "x", Time: "10:00 AM"}, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = store.InsertPosition(&model.Event{ID: "x", Time: "09:00 AM"}, "2024-06-10")
	require.NoError(t, err)
	// Equal times insert after the existing event.
	assert.Equal(t, 1, idx)

	idx, err = store.InsertPosition(&model.Event{ID: "x", Time: "08:00 AM"}, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = store.InsertPosition(&model.Event{ID: "x", Time: "11:00 PM"}, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}
