package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ESPNAPI     ESPNAPI
	Refresh     Refresh
	HTTP        HTTP
	TelegramBot TelegramBot
	Cache       Cache
}

type ESPNAPI struct {
	LeaderboardURL    string        `envconfig:"ESPN_LEADERBOARD_URL" default:"https://site.api.espn.com/apis/site/v2/sports/golf/pga/leaderboard"`
	Timeout           time.Duration `envconfig:"ESPN_TIMEOUT" default:"10s"`
	EventID           string        `envconfig:"ESPN_EVENT_ID"`
	RequestsPerMinute int           `envconfig:"ESPN_REQUESTS_PER_MINUTE" default:"30"`
	MaxFailures       uint32        `envconfig:"ESPN_MAX_FAILURES" default:"3"`
	BreakerCooldown   time.Duration `envconfig:"ESPN_BREAKER_COOLDOWN" default:"2m"`
}

type Refresh struct {
	Interval time.Duration `envconfig:"REFRESH_INTERVAL" default:"60s"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"60s"`
	Location string        `envconfig:"TIMEZONE" default:"America/New_York"`
	// Standard five-field cron expression for the chat standings post.
	StandingsCron string `envconfig:"STANDINGS_CRON" default:"30 19 * * 0,4,5,6"`
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":80"`
}

// TelegramBot is optional. The bot and the scheduled standings post are
// disabled when Token is empty.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Cache struct {
	RedisURL string `envconfig:"REDIS_URL"`
	Key      string `envconfig:"REDIS_KEY" default:"pgapool:leaderboard"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}
