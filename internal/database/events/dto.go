package events

import "kanbancal/internal/model"

type eventDTO struct {
	ID          string
	DateKey     string
	Title       string
	Description string
	ImageURL    string `db:"image_url"`
	EventTime   string
	Duration    string
	FullDate    string
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		Time:        dto.EventTime,
		Duration:    dto.Duration,
		FullDate:    dto.FullDate,
	}
}
