package payout

import (
	"testing"

	"github.com/omarshaarawi/pgapool/internal/draft"
	"github.com/omarshaarawi/pgapool/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_SampleSnapshot(t *testing.T) {
	snapshot := models.Snapshot{
		"Scottie Scheffler": "1",
		"Jordan Spieth":     "2",
		"Shane Lowry":       "3",
	}

	result := Calculate(snapshot, draft.Pool, draft.Prizes)

	assert.Equal(t, 460, result.Totals["James Trimble"])

	records := result.RecordsFor("James Trimble")
	require.Len(t, records, 8)
	assert.Equal(t, []int{198, 143, 119, 0, 0, 0, 0, 0}, winnings(records))
	assert.Equal(t, models.PositionNotFound, records[3].Position)

	require.NotEmpty(t, result.Ranking)
	assert.Equal(t, models.PersonTotal{Rank: 1, Person: "James Trimble", Total: 460}, result.Ranking[0])
	for _, person := range result.Ranking[1:] {
		assert.Equal(t, 0, person.Total)
		assert.Equal(t, 2, person.Rank)
	}
}

func TestCalculate_TotalsMatchRecords(t *testing.T) {
	snapshot := models.Snapshot{
		"Rory McIlroy":      "T2",
		"Viktor Hovland":    "T2",
		"Jon Rahm":          "4",
		"Xander Schauffele": "1",
		"Ludvig Aberg":      "7",
		"Collin Morikawa":   "11",
		"Justin Thomas":     "T15",
		"Brooks Koepka":     "—",
	}

	result := Calculate(snapshot, draft.Pool, draft.Prizes)

	require.Len(t, result.Records, len(draft.Pool)*draft.PlayersPerTeam)
	for _, team := range draft.Pool {
		records := result.RecordsFor(team.Person)
		require.Len(t, records, draft.PlayersPerTeam)

		sum := 0
		for _, record := range records {
			sum += record.Winnings
		}
		assert.Equal(t, result.Totals[team.Person], sum, team.Person)
	}

	assert.Equal(t, 286, result.Totals["Jack Rushin"])
	assert.Equal(t, 59, result.Totals["Matthew Bauer"])
	assert.Equal(t, 0, result.Totals["Jack Byrne"])
	assert.Equal(t, 0, result.Totals["Rich Wehman"])
	assert.Equal(t, 0, result.Totals["Jimmy Mangan"])
}

func TestCalculate_RankingOrder(t *testing.T) {
	snapshot := models.Snapshot{
		"Xander Schauffele": "1",
		"Jon Rahm":          "1",
		"Collin Morikawa":   "3",
	}

	result := Calculate(snapshot, draft.Pool, draft.Prizes)

	require.Len(t, result.Ranking, len(draft.Pool))
	assert.Equal(t, "John Funkhouser", result.Ranking[0].Person)
	assert.Equal(t, "Joseph Bauer", result.Ranking[1].Person)
	assert.Equal(t, 1, result.Ranking[0].Rank)
	assert.Equal(t, 1, result.Ranking[1].Rank)
	assert.Equal(t, "Jack Byrne", result.Ranking[2].Person)
	assert.Equal(t, 3, result.Ranking[2].Rank)

	for i := 1; i < len(result.Ranking); i++ {
		assert.GreaterOrEqual(t, result.Ranking[i-1].Total, result.Ranking[i].Total)
	}

	// zero totals stay in roster order
	var zeros []string
	for _, p := range result.Ranking[3:] {
		zeros = append(zeros, p.Person)
	}
	assert.Equal(t, []string{"James Trimble", "Jack Rushin", "Jimmy Mangan", "Rich Wehman", "Matthew Bauer"}, zeros)
}

func TestCalculate_EmptySnapshot(t *testing.T) {
	for _, snapshot := range []models.Snapshot{nil, {}} {
		result := Calculate(snapshot, draft.Pool, draft.Prizes)

		require.Len(t, result.Records, 64)
		for _, person := range draft.Pool.People() {
			assert.Equal(t, 0, result.Totals[person])
		}
		for i, person := range result.Ranking {
			assert.Equal(t, draft.Pool[i].Person, person.Person)
			assert.Equal(t, 1, person.Rank)
		}
	}
}

func TestCalculate_UnpaidPositions(t *testing.T) {
	roster := draft.Roster{{Person: "Solo", Players: []string{"A", "B", "C", "D", "E", "F", "G", "H"}}}
	snapshot := models.Snapshot{"A": "11", "B": "T15", "C": "—", "D": "", "E": "CUT", "F": "T10"}

	result := Calculate(snapshot, roster, draft.Prizes)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 36, 0, 0}, winnings(result.Records))
	assert.Equal(t, 36, result.Totals["Solo"])
}

func TestNewSnapshot(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{Position: "1", PlayerName: "Scottie Scheffler"},
		{Position: "", PlayerName: "Tiger Woods"},
		{Position: "T3", PlayerName: ""},
	}

	snapshot := NewSnapshot(entries)

	assert.Equal(t, models.Snapshot{
		"Scottie Scheffler": "1",
		"Tiger Woods":       models.PositionUnranked,
	}, snapshot)
}

func TestLookup(t *testing.T) {
	snapshot := models.Snapshot{"Ludvig Aberg": "5", "Nicolai Hojgaard": "T8"}

	position, ok := Lookup(snapshot, "Ludvig Åberg")
	assert.True(t, ok)
	assert.Equal(t, "5", position)

	position, ok = Lookup(snapshot, "Nicolai Højgaard")
	assert.True(t, ok)
	assert.Equal(t, "T8", position)

	position, ok = Lookup(snapshot, "Rasmus Højgaard")
	assert.False(t, ok)
	assert.Equal(t, models.PositionNotFound, position)
}

func winnings(records []models.PayoutRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Winnings
	}
	return out
}
