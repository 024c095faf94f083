package memory

import (
	"sync"

	"github.com/omarshaarawi/pgapool/internal/models"
)

type Repository struct {
	leaderboard *models.Leaderboard
	mu          sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveLeaderboard(leaderboard *models.Leaderboard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaderboard = leaderboard
	return nil
}

func (r *Repository) GetLeaderboard() (*models.Leaderboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leaderboard, nil
}
