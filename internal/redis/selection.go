package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"kanbancal/internal/config"
	"kanbancal/internal/model"
)

const selectionPrefix = "selection:"

// SelectionRepository persists the selected calendar date per client
// session, expiring entries after the configured TTL so a stale selection
// falls back to "today".
type SelectionRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewSelectionRepository(pool *redis.Pool, logger *zap.SugaredLogger) *SelectionRepository {
	return &SelectionRepository{pool: pool, logger: logger}
}

// Get returns the stored date key for a session, model.ErrNoRecord if the
// session has no selection.
func (r *SelectionRepository) Get(ctx context.Context, session string) (string, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return "", fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	dateKey, err := redis.String(conn.Do("GET", selectionPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return "", model.ErrNoRecord
		}
		return "", fmt.Errorf("GET: %w", err)
	}

	return dateKey, nil
}

// Set stores the selected date key for a session.
func (r *SelectionRepository) Set(ctx context.Context, session, dateKey string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	ttl := int(config.SelectionTTL().Seconds())
	if _, err := conn.Do("SETEX", selectionPrefix+session, ttl, dateKey); err != nil {
		return fmt.Errorf("SETEX: %w", err)
	}

	return nil
}

// Delete removes a session's selection.
func (r *SelectionRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", selectionPrefix+session); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}
