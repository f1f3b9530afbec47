package memory

import (
	"context"
	"sort"
	"time"

	"kanbancal/internal/model"
)

// EventRepository is the in-process event source used when no database is
// configured. It seeds a handful of events around the current date so the
// calendar is populated on first run.
type EventRepository struct {
	events map[string][]*model.Event
}

func NewEventRepository(now time.Time) *EventRepository {
	r := &EventRepository{events: map[string][]*model.Event{}}

	day := func(offset int) string {
		return model.DateKey(now.AddDate(0, 0, offset))
	}

	r.add(day(-2), &model.Event{
		ID:          "event-past-1",
		Title:       "Project Kickoff",
		Description: "Initial meeting to discuss project scope, timeline, and team responsibilities. Set up communication channels and project management tools.",
		ImageURL:    "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?q=80&w=1920&h=1080&auto=format&fit=crop",
		Time:        "10:00 AM",
		Duration:    "2 hours",
	})

	r.add(day(-1), &model.Event{
		ID:          "event-past-3",
		Title:       "Team Lunch",
		Description: "Casual team lunch to celebrate recent project milestones and build team rapport.",
		ImageURL:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?q=80&w=1920&h=1080&auto=format&fit=crop",
		Time:        "12:00 PM",
		Duration:    "1 hour",
	})
	r.add(day(-1), &model.Event{
		ID:          "event-past-2",
		Title:       "Design Review",
		Description: "Review UI mockups and design system with the design team. Discuss implementation approach and potential challenges.",
		ImageURL:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?q=80&w=1920&h=1080&auto=format&fit=crop",
		Time:        "02:30 PM",
		Duration:    "1.5 hours",
	})

	r.add(day(0), &model.Event{
		ID:          "event-1",
		Title:       "Coffee with Alex",
		Description: "Meet with Alex to brainstorm ideas for the upcoming product launch. We'll review market research and competitor analysis to identify potential opportunities and challenges.",
		ImageURL:    "https://fastly.picsum.photos/id/312/1920/1080.jpg?hmac=OD_fP9MUQN7uJ8NBR7tlii78qwHPUROGgohG4w16Kjw",
		Time:        "09:00 AM",
		Duration:    "45 minutes",
	})
	r.add(day(0), &model.Event{
		ID:          "event-2",
		Title:       "Team Standup",
		Description: "Weekly standup meeting with the dev team. Discuss progress, blockers, and align on next week's priorities.",
		ImageURL:    "https://fastly.picsum.photos/id/737/1920/1080.jpg?hmac=aFzER8Y4wcWTrXVx2wVKSj10IqnygaF33gESj0WGDwI",
		Time:        "02:00 PM",
		Duration:    "30 minutes",
	})

	r.add(day(1), &model.Event{
		ID:          "event-3",
		Title:       "Yoga Session",
		Description: "Join for a relaxing yoga session to reduce stress and improve mindfulness. Suitable for all levels, focusing on gentle stretches.",
		ImageURL:    "https://fastly.picsum.photos/id/392/1920/1080.jpg?hmac=Fvbf7C1Rcozg8EccwYPqsGkk_o6Bld2GQRDPZKWpd7g",
		Time:        "12:00 PM",
		Duration:    "1 hour",
	})
	r.add(day(1), &model.Event{
		ID:          "event-4",
		Title:       "Product Demo",
		Description: "Demo of UI improvements and performance optimizations to gather stakeholder feedback.",
		ImageURL:    "https://fastly.picsum.photos/id/249/1920/1080.jpg?hmac=cPMNdgGXRh6T_KhRMuaQjRtAx5cWRraELjtL2MHTfYs",
		Time:        "03:30 PM",
		Duration:    "45 minutes",
	})

	r.add(day(2), &model.Event{
		ID:          "event-5",
		Title:       "Client Meeting",
		Description: "Review project progress, timeline adjustments, and outline roadmap for next quarter with the client.",
		ImageURL:    "https://fastly.picsum.photos/id/908/1920/1080.jpg?hmac=MeG_oA1s75hHAL_4JzCioh6--zyFTWSCTxOhe8ugvXo",
		Time:        "11:30 AM",
		Duration:    "1 hour",
	})

	return r
}

func (r *EventRepository) add(dateKey string, event *model.Event) {
	if event.FullDate == "" {
		if fullDate, err := model.FullDate(dateKey); err == nil {
			event.FullDate = fullDate
		}
	}
	r.events[dateKey] = append(r.events[dateKey], event)
}

func (r *EventRepository) EventDates(_ context.Context) ([]string, error) {
	dates := make([]string, 0, len(r.events))
	for date := range r.events {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	return dates, nil
}

func (r *EventRepository) EventsByDate(_ context.Context, dateKey string) ([]*model.Event, error) {
	return r.events[dateKey], nil
}
