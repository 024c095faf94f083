// Package payout joins a leaderboard snapshot against the draft and prize
// table to work out what everyone in the pool has won.
package payout

import (
	"sort"

	"github.com/omarshaarawi/pgapool/internal/draft"
	"github.com/omarshaarawi/pgapool/internal/models"
	"github.com/omarshaarawi/pgapool/internal/names"
)

type Result struct {
	// Records are in roster order: person by person, player by player.
	Records []models.PayoutRecord
	Totals  map[string]int
	// Ranking is ordered by total descending; equal totals keep roster order
	// and share a rank.
	Ranking []models.PersonTotal
}

func NewSnapshot(entries []models.LeaderboardEntry) models.Snapshot {
	snapshot := make(models.Snapshot, len(entries))
	for _, entry := range entries {
		if entry.PlayerName == "" {
			continue
		}
		position := entry.Position
		if position == "" {
			position = models.PositionUnranked
		}
		snapshot[entry.PlayerName] = position
	}
	return snapshot
}

// Lookup finds player's position, falling back to a folded name comparison
// when ESPN spells the name differently.
func Lookup(snapshot models.Snapshot, player string) (string, bool) {
	if position, ok := snapshot[player]; ok {
		return position, true
	}
	key := names.Fold(player)
	for name, position := range snapshot {
		if names.Fold(name) == key {
			return position, true
		}
	}
	return models.PositionNotFound, false
}

func Calculate(snapshot models.Snapshot, roster draft.Roster, prizes draft.PrizeTable) Result {
	result := Result{
		Records: make([]models.PayoutRecord, 0, len(roster)*draft.PlayersPerTeam),
		Totals:  make(map[string]int, len(roster)),
		Ranking: make([]models.PersonTotal, 0, len(roster)),
	}

	for _, team := range roster {
		total := 0
		for _, player := range team.Players {
			position, _ := Lookup(snapshot, player)
			winnings := prizes.Winnings(position)
			total += winnings

			result.Records = append(result.Records, models.PayoutRecord{
				Person:   team.Person,
				Player:   player,
				Position: position,
				Winnings: winnings,
			})
		}
		result.Totals[team.Person] = total
		result.Ranking = append(result.Ranking, models.PersonTotal{
			Person: team.Person,
			Total:  total,
		})
	}

	sort.SliceStable(result.Ranking, func(i, j int) bool {
		return result.Ranking[i].Total > result.Ranking[j].Total
	})

	for i := range result.Ranking {
		if i > 0 && result.Ranking[i].Total == result.Ranking[i-1].Total {
			result.Ranking[i].Rank = result.Ranking[i-1].Rank
		} else {
			result.Ranking[i].Rank = i + 1
		}
	}

	return result
}

// RecordsFor returns person's payout records in draft order.
func (r Result) RecordsFor(person string) []models.PayoutRecord {
	var records []models.PayoutRecord
	for _, record := range r.Records {
		if record.Person == person {
			records = append(records, record)
		}
	}
	return records
}
