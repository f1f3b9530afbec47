package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
)

// PSQL is the statement builder every query in this package starts from.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CalendarEventsTable holds one row per event, keyed by its calendar day.
const CalendarEventsTable = "calendar_events"

// Queryable contains the operations repositories run against the database.
type Queryable interface {
	Exec(ctx context.Context, sqlizer sqlizer) (pgconn.CommandTag, error)
	Get(ctx context.Context, dst interface{}, sqlizer sqlizer) error
	Select(ctx context.Context, dst interface{}, sqlizer sqlizer) error
}

type sqlizer interface {
	ToSql() (sql string, args []interface{}, err error)
}
