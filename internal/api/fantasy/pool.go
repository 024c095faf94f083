package fantasy

import (
	"github.com/omarshaarawi/pgapool/internal/draft"
	"github.com/omarshaarawi/pgapool/internal/models"
	"github.com/omarshaarawi/pgapool/internal/payout"
)

type LeaderboardSource interface {
	GetLeaderboard() (*models.Leaderboard, error)
}

// API overlays the pool's draft on top of the live leaderboard.
type API struct {
	source LeaderboardSource
	roster draft.Roster
	prizes draft.PrizeTable
}

func NewAPI(source LeaderboardSource, roster draft.Roster, prizes draft.PrizeTable) *API {
	return &API{source: source, roster: roster, prizes: prizes}
}

func (a *API) GetLeaderboard() (*models.Leaderboard, error) {
	return a.source.GetLeaderboard()
}

func (a *API) CalculatePayouts(snapshot models.Snapshot) payout.Result {
	return payout.Calculate(snapshot, a.roster, a.prizes)
}

func (a *API) Roster() draft.Roster {
	return a.roster
}
