package view

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"kanbancal/internal/business/drag"
	"kanbancal/internal/business/paging"
	"kanbancal/internal/business/schedule"
	"kanbancal/internal/model"
	"kanbancal/internal/pkg/clock"
)

// Orchestrator wires the event store, the paging controller and the drag
// coordinator into the single entry point the presentation layer talks to.
// Commands are serialized: the core state machine assumes one gesture at a
// time, the mutex keeps that true under a concurrent serving surface.
type Orchestrator struct {
	mu     sync.Mutex
	logger *zap.SugaredLogger
	clk    clock.Clock

	store  *schedule.Store
	paging *paging.Controller
	drag   *drag.Coordinator
}

// State is the view snapshot the presentation layer renders from.
type State struct {
	CurrentDate time.Time
	CurrentKey  string
	WeekStart   time.Time
	WeekDates   []time.Time
	Direction   int
	Dragging    bool
	Version     uint64
}

func NewOrchestrator(
	logger *zap.SugaredLogger,
	clk clock.Clock,
	store *schedule.Store,
	pager *paging.Controller,
	coordinator *drag.Coordinator,
) *Orchestrator {
	return &Orchestrator{
		logger: logger,
		clk:    clk,
		store:  store,
		paging: pager,
		drag:   coordinator,
	}
}

// SelectDate focuses a day.
func (o *Orchestrator) SelectDate(date time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.paging.SelectDate(date)
}

// ChangeWeek shifts the displayed week; delta +1 means the previous week.
func (o *Orchestrator) ChangeWeek(delta int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.paging.ChangeWeek(delta)
}

// Swipe moves the focus one day; direction +1 means the previous day.
func (o *Orchestrator) Swipe(direction int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.paging.Swipe(direction)
}

// StartDrag opens a drag session for an event sitting on sourceKey.
func (o *Orchestrator) StartDrag(eventID, sourceKey string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	event := o.findEvent(eventID, sourceKey)
	if event == nil {
		return fmt.Errorf("%w: %v on %v", model.ErrEventNotFound, eventID, sourceKey)
	}

	if err := o.drag.Start(event, sourceKey); err != nil {
		return err
	}

	o.logger.Debugw("drag started", "event", eventID, "source", sourceKey)

	return nil
}

// DragMove feeds pointer displacement into the active session.
func (o *Orchestrator) DragMove(dx, dy float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.drag.Move(dx, dy)
}

// DragOver records the day column the pointer hovers over.
func (o *Orchestrator) DragOver(targetKey string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.drag.Over(targetKey)
}

// EndDrag closes the active session. A qualifying drop moves the event and
// navigates the view to the target day; anything else is a cancelled no-op.
// If the store rejects the move, navigation does not happen and the data
// model is left untouched.
func (o *Orchestrator) EndDrag() (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	session, drop := o.drag.End()
	if !drop {
		return false, nil
	}

	if err := o.store.MoveEvent(session.Event.ID, session.SourceKey, session.TargetKey); err != nil {
		o.logger.Errorw("drop rejected", "event", session.Event.ID, "target", session.TargetKey, "err", err)
		return false, err
	}

	target, err := model.ParseDateKey(session.TargetKey)
	if err != nil {
		return true, err
	}
	o.paging.SelectDate(target)

	o.logger.Infow("event moved",
		"event", session.Event.ID,
		"from", session.SourceKey,
		"to", session.TargetKey,
	)

	return true, nil
}

// CancelDrag drops the active session without side effects.
func (o *Orchestrator) CancelDrag() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.drag.Cancel()
}

// CanOpenCard reports whether a tap may open the card detail view.
func (o *Orchestrator) CanOpenCard() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.drag.CanOpenCard()
}

// MoveEventAndFollow relocates an event one day off the focused date and
// navigates the view after it; direction +1 means the previous day, -1 the
// next, matching swipe. Mutation and navigation act as one gesture: a failed
// move leaves the view where it was.
func (o *Orchestrator) MoveEventAndFollow(eventID string, direction int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	days := 1
	if direction > 0 {
		days = -1
	}

	source := o.paging.CurrentDate()
	target := source.AddDate(0, 0, days)

	if err := o.store.MoveEvent(eventID, model.DateKey(source), model.DateKey(target)); err != nil {
		return fmt.Errorf("move event: %w", err)
	}

	o.paging.SelectDate(target)

	return nil
}

// MoveEvent relocates an event between two explicit dates without touching
// the focused day.
func (o *Orchestrator) MoveEvent(eventID, sourceKey, targetKey string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.store.MoveEvent(eventID, sourceKey, targetKey)
}

// AddEvent inserts a new event on a day.
func (o *Orchestrator) AddEvent(event *model.Event, dateKey string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.store.AddEvent(event, dateKey)
}

// RemoveEvent deletes an event from a day.
func (o *Orchestrator) RemoveEvent(eventID, dateKey string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.store.RemoveEvent(eventID, dateKey)
}

// EventsFor returns the time-ordered events on a date.
func (o *Orchestrator) EventsFor(dateKey string) []*model.Event {
	return o.store.EventsFor(dateKey)
}

// EventDetail returns an event together with its relative date label
// ("Today", "In 3 days") for the detail view.
func (o *Orchestrator) EventDetail(eventID, dateKey string) (*model.Event, string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	event := o.findEvent(eventID, dateKey)
	if event == nil {
		return nil, "", fmt.Errorf("%w: %v on %v", model.ErrEventNotFound, eventID, dateKey)
	}

	date, err := model.ParseDateKey(dateKey)
	if err != nil {
		return nil, "", err
	}

	return event, model.RelativeLabel(date, o.clk.Now()), nil
}

// State returns the current view snapshot.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	return State{
		CurrentDate: o.paging.CurrentDate(),
		CurrentKey:  o.paging.CurrentKey(),
		WeekStart:   o.paging.WeekStart(),
		WeekDates:   o.paging.WeekDates(),
		Direction:   o.paging.Direction(),
		Dragging:    o.drag.Dragging(),
		Version:     o.store.Version(),
	}
}

// Watch exposes the store's change signal so the presentation layer can
// re-render after any mutation.
func (o *Orchestrator) Watch() <-chan struct{} {
	return o.store.Watch()
}

func (o *Orchestrator) findEvent(eventID, dateKey string) *model.Event {
	for _, e := range o.store.EventsFor(dateKey) {
		if e.ID == eventID {
			return e
		}
	}

	return nil
}
