package api

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanbancal/internal/business/view"
	"kanbancal/internal/model"
)

type calendarStub struct {
	state    view.State
	events   map[string][]*model.Event
	selected []time.Time
	dragErr  error
	moveErr  error
}

func (s *calendarStub) SelectDate(date time.Time) { s.selected = append(s.selected, date) }
func (s *calendarStub) ChangeWeek(delta int)      {}
func (s *calendarStub) Swipe(direction int)       {}

func (s *calendarStub) StartDrag(eventID, sourceKey string) error { return s.dragErr }
func (s *calendarStub) DragMove(dx, dy float64)                   {}
func (s *calendarStub) DragOver(targetKey string)                 {}
func (s *calendarStub) EndDrag() (bool, error)                    { return true, nil }
func (s *calendarStub) CancelDrag()                               {}
func (s *calendarStub) CanOpenCard() bool                         { return true }

func (s *calendarStub) MoveEvent(eventID, sourceKey, targetKey string) error { return s.moveErr }
func (s *calendarStub) MoveEventAndFollow(eventID string, direction int) error {
	return s.moveErr
}
func (s *calendarStub) AddEvent(event *model.Event, dateKey string) error { return nil }
func (s *calendarStub) RemoveEvent(eventID, dateKey string) error         { return s.moveErr }

func (s *calendarStub) EventsFor(dateKey string) []*model.Event { return s.events[dateKey] }
func (s *calendarStub) EventDetail(eventID, dateKey string) (*model.Event, string, error) {
	for _, e := range s.events[dateKey] {
		if e.ID == eventID {
			return e, "Today", nil
		}
	}
	return nil, "", model.ErrEventNotFound
}
func (s *calendarStub) State() view.State { return s.state }

type selectionsStub struct {
	values map[string]string
}

func (s *selectionsStub) Get(_ context.Context, session string) (string, error) {
	v, ok := s.values[session]
	if !ok {
		return "", model.ErrNoRecord
	}
	return v, nil
}

func (s *selectionsStub) Set(_ context.Context, session, dateKey string) error {
	s.values[session] = dateKey
	return nil
}

func newTestApi(t *testing.T) (*Api, *calendarStub, *selectionsStub) {
	t.Helper()

	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}

	calendar := &calendarStub{
		state: view.State{
			CurrentDate: monday,
			CurrentKey:  "2024-06-10",
			WeekStart:   monday,
			WeekDates:   week,
			Version:     3,
		},
		events: map[string][]*model.Event{
			"2024-06-10": {
				{ID: "event-1", Title: "Coffee with Alex", Time: "09:00 AM"},
				{ID: "event-2", Title: "Team Standup", Time: "02:00 PM"},
			},
		},
	}
	selections := &selectionsStub{values: map[string]string{}}

	a, err := NewApi(zap.NewNop().Sugar(), rand.Reader, calendar, selections)
	require.NoError(t, err)

	return a, calendar, selections
}

func TestGetCalendar(t *testing.T) {
	a, _, _ := newTestApi(t)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp calendarResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-10", resp.CurrentDate)
	assert.Equal(t, uint64(3), resp.Version)
	require.Len(t, resp.Week, 7)
	assert.True(t, resp.Week[0].HasEvents)
	assert.False(t, resp.Week[1].HasEvents)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "event-1", resp.Events[0].ID)
}

func TestGetEventsRequiresDate(t *testing.T) {
	a, _, _ := newTestApi(t)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/events", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEventDetail(t *testing.T) {
	a, _, _ := newTestApi(t)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/events/event-1?date=2024-06-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"relative_date":"Today"`)

	rec = httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/events/missing?date=2024-06-10", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectDatePersistsAndSetsCookie(t *testing.T) {
	a, calendar, selections := newTestApi(t)

	body := strings.NewReader(`{"date": "2024-06-14"}`)
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/date", body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, calendar.selected, 1)
	assert.Equal(t, "2024-06-14", model.DateKey(calendar.selected[0]))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "2024-06-14", selections.values[cookies[0].Value])
}

func TestSelectDateRejectsBadDate(t *testing.T) {
	a, calendar, _ := newTestApi(t)

	body := strings.NewReader(`{"date": "June 14th"}`)
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/date", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, calendar.selected)
}

func TestGetSelectedDateDefaultsToToday(t *testing.T) {
	a, _, _ := newTestApi(t)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/date", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), model.DateKey(time.Now()))
}

func TestGetSelectedDateReadsStoredValue(t *testing.T) {
	a, _, selections := newTestApi(t)
	selections.values["session-token"] = "2024-06-14"

	req := httptest.NewRequest(http.MethodGet, "/calendar/date", nil)
	req.AddCookie(&http.Cookie{Name: "calendar_session", Value: "session-token"})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-06-14")
}

func TestDragStartConflict(t *testing.T) {
	a, calendar, _ := newTestApi(t)
	calendar.dragErr = model.ErrDragInProgress

	body := strings.NewReader(`{"event_id": "event-1", "source": "2024-06-10"}`)
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/drag/start", body))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMoveEventNotFound(t *testing.T) {
	a, calendar, _ := newTestApi(t)
	calendar.moveErr = model.ErrEventNotFound

	body := strings.NewReader(`{"source": "2024-06-10", "target": "2024-06-11"}`)
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/events/missing/move", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangeWeekValidatesDelta(t *testing.T) {
	a, _, _ := newTestApi(t)

	body := strings.NewReader(`{"delta": 0}`)
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/week", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
