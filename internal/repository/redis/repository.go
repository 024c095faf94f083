// Package redis caches the latest leaderboard in Redis so several dashboard
// instances can share one upstream fetch.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/omarshaarawi/pgapool/internal/models"
	goredis "github.com/redis/go-redis/v9"
)

const opTimeout = 2 * time.Second

type Repository struct {
	client goredis.UniversalClient
	key    string
	ttl    time.Duration
}

func NewRepository(url, key string, ttl time.Duration) (*Repository, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewRepositoryWithClient(goredis.NewClient(opts), key, ttl), nil
}

func NewRepositoryWithClient(client goredis.UniversalClient, key string, ttl time.Duration) *Repository {
	return &Repository{client: client, key: key, ttl: ttl}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Repository) SaveLeaderboard(leaderboard *models.Leaderboard) error {
	data, err := json.Marshal(leaderboard)
	if err != nil {
		return fmt.Errorf("encoding leaderboard: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("saving leaderboard: %w", err)
	}
	return nil
}

// GetLeaderboard returns nil without error when nothing is cached.
func (r *Repository) GetLeaderboard() (*models.Leaderboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}

	var leaderboard models.Leaderboard
	if err := json.Unmarshal(data, &leaderboard); err != nil {
		return nil, fmt.Errorf("decoding cached leaderboard: %w", err)
	}
	return &leaderboard, nil
}

func (r *Repository) Close() error {
	return r.client.Close()
}
