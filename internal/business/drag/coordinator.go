package drag

import (
	"fmt"
	"math"
	"time"

	"kanbancal/internal/model"
	"kanbancal/internal/pkg/clock"
)

// Session is the transient record of one drag: which event is being
// relocated, from which day, and which day the pointer currently hovers
// over. Distance accumulates pointer displacement so a release can be
// classified as a drag or a click.
type Session struct {
	Event     *model.Event
	SourceKey string
	TargetKey string
	distance  float64
}

// Distance returns the cumulative pointer displacement of the session.
func (s *Session) Distance() float64 {
	return s.distance
}

// Coordinator serializes drag interpretation for the whole view: at most one
// session is active, and for a cool-down window after a drag ends taps are
// suppressed so a release is not misread as an open-details click.
type Coordinator struct {
	clk         clock.Clock
	cooldown    time.Duration
	minDistance float64

	session *Session
	lastEnd time.Time
}

func NewCoordinator(clk clock.Clock, cooldown time.Duration, minDistance float64) *Coordinator {
	return &Coordinator{
		clk:         clk,
		cooldown:    cooldown,
		minDistance: minDistance,
	}
}

// Start opens a drag session. A second start while one is active is a
// protocol violation and is rejected.
func (c *Coordinator) Start(event *model.Event, sourceKey string) error {
	if c.session != nil {
		return fmt.Errorf("%w: event %v", model.ErrDragInProgress, c.session.Event.ID)
	}

	c.session = &Session{Event: event, SourceKey: sourceKey}

	return nil
}

// Move accumulates pointer displacement for the active session. Calls
// without an active session are ignored.
func (c *Coordinator) Move(dx, dy float64) {
	if c.session == nil {
		return
	}

	c.session.distance += math.Hypot(dx, dy)
}

// Over records the day column the pointer currently hovers over.
func (c *Coordinator) Over(targetKey string) {
	if c.session == nil {
		return
	}

	c.session.TargetKey = targetKey
}

// End closes the active session and reports whether the gesture qualified
// as a drag: enough displacement and a drop target different from the
// source. Releases below the distance threshold are clicks and leave the
// cool-down untouched, so the click can still open the card.
func (c *Coordinator) End() (*Session, bool) {
	session := c.session
	if session == nil {
		return nil, false
	}
	c.session = nil

	if session.distance < c.minDistance {
		return session, false
	}

	c.lastEnd = c.clk.Now()

	return session, session.TargetKey != "" && session.TargetKey != session.SourceKey
}

// Cancel drops the active session without recording a drag end.
func (c *Coordinator) Cancel() {
	c.session = nil
}

// Dragging reports whether a session is active.
func (c *Coordinator) Dragging() bool {
	return c.session != nil
}

// Current returns the active session, nil if none.
func (c *Coordinator) Current() *Session {
	return c.session
}

// CanOpenCard reports whether a tap may open the card detail view: false
// while a drag is active and for the cool-down window after one ends.
func (c *Coordinator) CanOpenCard() bool {
	if c.session != nil {
		return false
	}

	return c.clk.Now().Sub(c.lastEnd) >= c.cooldown
}
