package api

import (
	"kanbancal/internal/business/view"
	"kanbancal/internal/model"
)

type eventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Time        string `json:"time"`
	Duration    string `json:"duration,omitempty"`
	FullDate    string `json:"full_date,omitempty"`
}

func mapToEventResp(event *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		ImageURL:    event.ImageURL,
		Time:        event.Time,
		Duration:    event.Duration,
		FullDate:    event.FullDate,
	}, nil
}

type dayResp struct {
	Date      string `json:"date"`
	HasEvents bool   `json:"has_events"`
}

type calendarResp struct {
	CurrentDate string       `json:"current_date"`
	WeekStart   string       `json:"week_start"`
	Direction   int          `json:"direction"`
	Dragging    bool         `json:"dragging"`
	Version     uint64       `json:"version"`
	Week        []dayResp    `json:"week"`
	Events      []*eventResp `json:"events"`
}

func (a *Api) mapToCalendarResp(state view.State) (*calendarResp, error) {
	week := make([]dayResp, len(state.WeekDates))
	for i, date := range state.WeekDates {
		key := model.DateKey(date)
		week[i] = dayResp{
			Date:      key,
			HasEvents: len(a.calendar.EventsFor(key)) > 0,
		}
	}

	events, err := mapSlice(a.calendar.EventsFor(state.CurrentKey), mapToEventResp)
	if err != nil {
		return nil, err
	}

	return &calendarResp{
		CurrentDate: state.CurrentKey,
		WeekStart:   model.DateKey(state.WeekStart),
		Direction:   state.Direction,
		Dragging:    state.Dragging,
		Version:     state.Version,
		Week:        week,
		Events:      events,
	}, nil
}
