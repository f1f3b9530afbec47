package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kanbancal/internal/model"
)

func (a *Api) getCalendarHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := a.mapToCalendarResp(a.calendar.State())
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getVersionHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]uint64{"version": a.calendar.State().Version}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) canOpenHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]bool{"can_open": a.calendar.CanOpenCard()}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getSelectedDateHandler(w http.ResponseWriter, r *http.Request) {
	session, err := a.session(w, r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	dateKey := model.DateKey(time.Now())
	if stored, err := a.selections.Get(r.Context(), session); err == nil {
		// An unparsable stored value falls back to today.
		if _, parseErr := model.ParseDateKey(stored); parseErr == nil {
			dateKey = stored
		}
	} else if !errors.Is(err, model.ErrNoRecord) {
		a.serverErrorResponse(w, r, fmt.Errorf("get selection: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, map[string]string{"date": dateKey}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) selectDateHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Date string `json:"date"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	date, err := model.ParseDateKey(req.Date)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	session, err := a.session(w, r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	a.calendar.SelectDate(date)

	if err := a.selections.Set(r.Context(), session, req.Date); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("persist selection: %w", err))
		return
	}

	a.respondState(w, r)
}

func (a *Api) changeWeekHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Delta int `json:"delta"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.Delta == 0 {
		a.badRequestResponse(w, r, errors.New("delta must be +1 or -1"))
		return
	}

	a.calendar.ChangeWeek(req.Delta)
	a.respondState(w, r)
}

func (a *Api) swipeHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Direction int `json:"direction"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.Direction == 0 {
		a.badRequestResponse(w, r, errors.New("direction must be +1 or -1"))
		return
	}

	a.calendar.Swipe(req.Direction)
	a.respondState(w, r)
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		a.badRequestResponse(w, r, errors.New("date must be provided"))
		return
	}
	if _, err := model.ParseDateKey(dateKey); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	resp, err := mapSlice(a.calendar.EventsFor(dateKey), mapToEventResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		a.badRequestResponse(w, r, errors.New("date must be provided"))
		return
	}

	event, relative, err := a.calendar.EventDetail(chi.URLParam(r, "id"), dateKey)
	if err != nil {
		a.calendarErrorResponse(w, r, err)
		return
	}

	resp := &struct {
		*eventResp
		RelativeDate string `json:"relative_date"`
	}{}
	resp.eventResp, _ = mapToEventResp(event)
	resp.RelativeDate = relative

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) addEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Time        string `json:"time"`
		Duration    string `json:"duration"`
		Date        string `json:"date"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	switch {
	case req.ID == "":
		a.badRequestResponse(w, r, errors.New("id must be provided"))
		return
	case req.Title == "":
		a.badRequestResponse(w, r, errors.New("title must be provided"))
		return
	case req.Time == "":
		a.badRequestResponse(w, r, errors.New("time must be provided"))
		return
	case req.Date == "":
		a.badRequestResponse(w, r, errors.New("date must be provided"))
		return
	}

	event := &model.Event{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Time:        req.Time,
		Duration:    req.Duration,
	}

	if err := a.calendar.AddEvent(event, req.Date); err != nil {
		a.calendarErrorResponse(w, r, fmt.Errorf("add event: %w", err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (a *Api) removeEventHandler(w http.ResponseWriter, r *http.Request) {
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		a.badRequestResponse(w, r, errors.New("date must be provided"))
		return
	}

	if err := a.calendar.RemoveEvent(chi.URLParam(r, "id"), dateKey); err != nil {
		a.calendarErrorResponse(w, r, fmt.Errorf("remove event: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) moveEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Source    string `json:"source"`
		Target    string `json:"target"`
		Direction int    `json:"direction"`
		Follow    bool   `json:"follow"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	eventID := chi.URLParam(r, "id")

	if req.Follow {
		if req.Direction == 0 {
			a.badRequestResponse(w, r, errors.New("direction must be +1 or -1"))
			return
		}

		if err := a.calendar.MoveEventAndFollow(eventID, req.Direction); err != nil {
			a.calendarErrorResponse(w, r, err)
			return
		}

		a.respondState(w, r)
		return
	}

	if req.Source == "" || req.Target == "" {
		a.badRequestResponse(w, r, errors.New("source and target must be provided"))
		return
	}

	if err := a.calendar.MoveEvent(eventID, req.Source, req.Target); err != nil {
		a.calendarErrorResponse(w, r, fmt.Errorf("move event: %w", err))
		return
	}

	a.respondState(w, r)
}

func (a *Api) dragStartHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		EventID string `json:"event_id"`
		Source  string `json:"source"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.EventID == "" || req.Source == "" {
		a.badRequestResponse(w, r, errors.New("event_id and source must be provided"))
		return
	}

	if err := a.calendar.StartDrag(req.EventID, req.Source); err != nil {
		a.calendarErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) dragMoveHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	a.calendar.DragMove(req.DX, req.DY)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) dragOverHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Target string `json:"target"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if _, err := model.ParseDateKey(req.Target); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	a.calendar.DragOver(req.Target)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) dragEndHandler(w http.ResponseWriter, r *http.Request) {
	moved, err := a.calendar.EndDrag()
	if err != nil {
		a.calendarErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, map[string]bool{"moved": moved}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) dragCancelHandler(w http.ResponseWriter, r *http.Request) {
	a.calendar.CancelDrag()
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) respondState(w http.ResponseWriter, r *http.Request) {
	resp, err := a.mapToCalendarResp(a.calendar.State())
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
