package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/omarshaarawi/pgapool/internal/api/espn"
	"github.com/omarshaarawi/pgapool/internal/draft"
	"github.com/omarshaarawi/pgapool/internal/models"
	"github.com/omarshaarawi/pgapool/internal/payout"
)

const (
	topN = 10

	unavailableMessage = "Error loading PGA data. Try refreshing."
)

type PoolAPI interface {
	GetLeaderboard() (*models.Leaderboard, error)
	CalculatePayouts(snapshot models.Snapshot) payout.Result
	Roster() draft.Roster
}

type Repository interface {
	SaveLeaderboard(leaderboard *models.Leaderboard) error
	GetLeaderboard() (*models.Leaderboard, error)
}

type PoolService struct {
	api      PoolAPI
	repo     Repository
	cacheTTL time.Duration
	now      func() time.Time
}

func NewPoolService(api PoolAPI, repo Repository, cacheTTL time.Duration) *PoolService {
	return &PoolService{api: api, repo: repo, cacheTTL: cacheTTL, now: time.Now}
}

// GetLeaderboard serves the cached leaderboard while it is younger than the
// cache TTL and fetches a fresh one otherwise.
func (s *PoolService) GetLeaderboard() (*models.Leaderboard, error) {
	cached, err := s.repo.GetLeaderboard()
	if err != nil {
		slog.Warn("Failed to read cached leaderboard", "error", err)
	}
	if cached != nil && s.now().Sub(cached.FetchedAt) < s.cacheTTL {
		return cached, nil
	}
	return s.Refresh()
}

// Refresh fetches the leaderboard regardless of the cache and stores it.
func (s *PoolService) Refresh() (*models.Leaderboard, error) {
	leaderboard, err := s.api.GetLeaderboard()
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveLeaderboard(leaderboard); err != nil {
		slog.Warn("Failed to cache leaderboard", "error", err)
	}

	slog.Info("Leaderboard refreshed", "event", leaderboard.EventName, "entries", len(leaderboard.Entries))
	return leaderboard, nil
}

// Dashboard never fails. When the leaderboard can't be loaded it is marked
// unavailable and payouts are worked out against an empty snapshot.
func (s *PoolService) Dashboard() models.Dashboard {
	dashboard := models.Dashboard{
		TopTen:    []models.LeaderboardEntry{},
		UpdatedAt: s.now(),
	}

	var entries []models.LeaderboardEntry
	leaderboard, err := s.GetLeaderboard()
	if err != nil {
		slog.Error("Failed to load leaderboard", "error", err)
		dashboard.Unavailable = true
		dashboard.Error = unavailableMessage
	} else {
		entries = leaderboard.Entries
		dashboard.EventName = leaderboard.EventName
		dashboard.TopTen = espn.TopN(entries, topN)
		dashboard.UpdatedAt = leaderboard.FetchedAt
	}

	result := s.api.CalculatePayouts(payout.NewSnapshot(entries))
	dashboard.Standings = result.Ranking
	dashboard.Breakdown = result.Records

	return dashboard
}

func formatMoney(amount int) string {
	return fmt.Sprintf("$%d", amount)
}
