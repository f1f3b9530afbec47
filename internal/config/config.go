package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production           bool          `env:"PRODUCTION" envDefault:"false"`
	Port                 string        `env:"PORT" envDefault:"80"`
	PostgresUrl          string        `env:"POSTGRES_URL" envDefault:""`
	RedisUrl             string        `env:"REDIS_URL" envDefault:"redis:6379"`
	DragCooldown         time.Duration `env:"DRAG_COOLDOWN" envDefault:"500ms"`
	DragMinDistance      float64       `env:"DRAG_MIN_DISTANCE" envDefault:"10"`
	SelectionTTL         time.Duration `env:"SELECTION_TTL" envDefault:"168h"`
	SelectionCookie      string        `env:"SELECTION_COOKIE" envDefault:"calendar_session"`
	SelectionTokenLength int           `env:"SELECTION_TOKEN_LENGTH" envDefault:"32"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func DragCooldown() time.Duration {
	return conf.DragCooldown
}

func DragMinDistance() float64 {
	return conf.DragMinDistance
}

func SelectionTTL() time.Duration {
	return conf.SelectionTTL
}

func SelectionCookie() string {
	return conf.SelectionCookie
}

func SelectionTokenLength() int {
	return conf.SelectionTokenLength
}
