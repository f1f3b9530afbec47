package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"kanbancal/internal/database"
	"kanbancal/internal/model"
)

func (r *Repository) EventDates(ctx context.Context) ([]string, error) {
	qb := database.PSQL.
		Select("DISTINCT date_key").
		From(database.CalendarEventsTable).
		OrderBy("date_key")

	var dates []string
	if err := r.db.Select(ctx, &dates, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return dates, nil
}

func (r *Repository) EventsByDate(ctx context.Context, dateKey string) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"date_key": dateKey}).
		OrderBy("id")

	var dtos []*eventDTO
	if err := r.db.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
