package models

import "time"

const (
	// PositionUnranked labels a competitor ESPN has not given a position.
	PositionUnranked = "—"
	// PositionNotFound labels a drafted player missing from the leaderboard.
	PositionNotFound = "N/A"
)

type LeaderboardEntry struct {
	Position     string `json:"position"`
	PlayerName   string `json:"player"`
	Score        int    `json:"score"`
	ScoreValid   bool   `json:"scoreValid"`
	ScoreDisplay string `json:"scoreDisplay"`
	Thru         string `json:"thru"`
}

type Leaderboard struct {
	EventName string             `json:"eventName"`
	Entries   []LeaderboardEntry `json:"entries"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// Snapshot maps player name to position label as of one fetch.
type Snapshot map[string]string

type PayoutRecord struct {
	Person   string `json:"person"`
	Player   string `json:"player"`
	Position string `json:"position"`
	Winnings int    `json:"winnings"`
}

type PersonTotal struct {
	Rank   int    `json:"rank"`
	Person string `json:"person"`
	Total  int    `json:"total"`
}

type Dashboard struct {
	EventName   string             `json:"eventName"`
	TopTen      []LeaderboardEntry `json:"leaderboard"`
	Unavailable bool               `json:"unavailable"`
	Error       string             `json:"error,omitempty"`
	Standings   []PersonTotal      `json:"standings"`
	Breakdown   []PayoutRecord     `json:"breakdown"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type WhoHasResult struct {
	PlayerName string
	Person     string
	Found      bool
	Position   string
	Winnings   int
}
