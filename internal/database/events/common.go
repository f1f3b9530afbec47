package events

import "kanbancal/internal/database"

// Repository reads the calendar events snapshot from Postgres.
type Repository struct {
	db database.Queryable
}

func NewRepository(db database.Queryable) *Repository {
	return &Repository{db: db}
}

var baseQuery = database.PSQL.
	Select("id",
		"date_key",
		"title",
		"description",
		"image_url",
		"event_time",
		"duration",
		"full_date",
	).
	From(database.CalendarEventsTable)
