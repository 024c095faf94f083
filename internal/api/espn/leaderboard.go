package espn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/omarshaarawi/pgapool/internal/models"
)

type API struct {
	client *Client
	now    func() time.Time
}

func NewAPI(client *Client) *API {
	return &API{client: client, now: time.Now}
}

// GetLeaderboard fetches the current PGA leaderboard. Entries are sorted by
// score to par; entries without a numeric score follow in ESPN's order.
func (a *API) GetLeaderboard() (*models.Leaderboard, error) {
	var resp models.LeaderboardResponse

	var params map[string]string
	if a.client.Config.EventID != "" {
		params = map[string]string{"event": a.client.Config.EventID}
	}

	if err := a.client.Get(a.client.Config.LeaderboardURL, params, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}

	leaderboard, err := normalizeLeaderboard(resp)
	if err != nil {
		return nil, fmt.Errorf("normalizing leaderboard: %w", err)
	}
	leaderboard.FetchedAt = a.now()

	return leaderboard, nil
}

// normalizeLeaderboard is the only place that knows where ESPN keeps the
// competitor list and its fields.
func normalizeLeaderboard(resp models.LeaderboardResponse) (*models.Leaderboard, error) {
	if len(resp.Events) == 0 {
		return nil, fmt.Errorf("%w: no events", ErrSchema)
	}
	event := resp.Events[0]

	if len(event.Competitions) == 0 {
		return nil, fmt.Errorf("%w: event %q has no competitions", ErrSchema, event.Name)
	}
	competition := event.Competitions[0]

	if competition.Competitors == nil {
		return nil, fmt.Errorf("%w: competition %q has no competitors", ErrSchema, competition.ID)
	}

	entries := make([]models.LeaderboardEntry, 0, len(competition.Competitors))
	for i, competitor := range competition.Competitors {
		if competitor.Athlete == nil || strings.TrimSpace(competitor.Athlete.DisplayName) == "" {
			return nil, fmt.Errorf("%w: competitor %d has no display name", ErrSchema, i)
		}

		scoreDisplay := strings.TrimSpace(competitor.Score.String())
		score, ok := parseScore(scoreDisplay)

		entries = append(entries, models.LeaderboardEntry{
			Position:     positionLabel(competitor),
			PlayerName:   strings.TrimSpace(competitor.Athlete.DisplayName),
			Score:        score,
			ScoreValid:   ok,
			ScoreDisplay: scoreDisplay,
			Thru:         thruLabel(competitor),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ScoreValid != entries[j].ScoreValid {
			return entries[i].ScoreValid
		}
		if !entries[i].ScoreValid {
			return false
		}
		return entries[i].Score < entries[j].Score
	})

	return &models.Leaderboard{
		EventName: event.Name,
		Entries:   entries,
	}, nil
}

// parseScore reads a to-par score: "E" is even, "+3" and "-7" are signed.
func parseScore(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "E") {
		return 0, true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, false
	}
	return n, true
}

func positionLabel(c models.Competitor) string {
	if label := strings.TrimSpace(c.Status.Position.DisplayName); label != "" && label != "-" {
		return label
	}
	if label := strings.TrimSpace(c.Position.String()); label != "" && label != "-" {
		return label
	}
	return models.PositionUnranked
}

func thruLabel(c models.Competitor) string {
	if thru := strings.TrimSpace(c.Status.Thru.String()); thru != "" {
		return thru
	}
	return "-"
}

// TopN returns at most n entries from the head of the leaderboard.
func TopN(entries []models.LeaderboardEntry, n int) []models.LeaderboardEntry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
