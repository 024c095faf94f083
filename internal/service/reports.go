package service

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/pgapool/internal/api/espn"
	"github.com/omarshaarawi/pgapool/internal/models"
	"github.com/omarshaarawi/pgapool/internal/payout"
)

func (s *PoolService) LeaderboardReport() (string, error) {
	leaderboard, err := s.GetLeaderboard()
	if err != nil {
		return "", fmt.Errorf("error fetching leaderboard: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⛳ *%s Top %d*\n\n", leaderboard.EventName, topN))

	top := espn.TopN(leaderboard.Entries, topN)
	if len(top) == 0 {
		sb.WriteString("No scores posted yet.")
		return sb.String(), nil
	}

	for _, entry := range top {
		sb.WriteString(fmt.Sprintf("%s. %s %s (thru %s)\n", entry.Position, entry.PlayerName, entry.ScoreDisplay, entry.Thru))
	}

	return sb.String(), nil
}

func (s *PoolService) StandingsReport() string {
	dashboard := s.Dashboard()

	var sb strings.Builder
	sb.WriteString("💸 *Pool Standings*\n\n")
	if dashboard.Unavailable {
		sb.WriteString("⚠️ Leaderboard unavailable, showing no winnings.\n\n")
	}

	for _, person := range dashboard.Standings {
		sb.WriteString(fmt.Sprintf("%d. *%s* %s\n", person.Rank, person.Person, formatMoney(person.Total)))
	}

	return sb.String()
}

func (s *PoolService) TeamReport(person string) (string, error) {
	roster := s.api.Roster()

	name, ok := bestMatch(person, roster.People(), 0.6)
	if !ok {
		return "", fmt.Errorf("person not found: %s", person)
	}

	dashboard := s.Dashboard()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Team*\n\n", name))
	if dashboard.Unavailable {
		sb.WriteString("⚠️ Leaderboard unavailable\n\n")
	}

	total := 0
	for _, record := range dashboard.Breakdown {
		if record.Person != name {
			continue
		}
		total += record.Winnings
		sb.WriteString(fmt.Sprintf("▫️ %s - %s - %s\n", record.Player, record.Position, formatMoney(record.Winnings)))
	}
	sb.WriteString(fmt.Sprintf("\n*Total:* %s", formatMoney(total)))

	return sb.String(), nil
}

func (s *PoolService) WhoHas(player string) (string, error) {
	result, err := s.findPlayer(player)
	if err != nil {
		return "", fmt.Errorf("error checking who has player: %w", err)
	}

	if !result.Found {
		return fmt.Sprintf("🔍 Nobody drafted a player matching '%s'.", player), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", result.PlayerName))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Drafted by *%s*\n", result.Person))
	sb.WriteString(fmt.Sprintf("Position: %s\n", result.Position))
	sb.WriteString(fmt.Sprintf("Winnings: %s", formatMoney(result.Winnings)))

	return sb.String(), nil
}

func (s *PoolService) findPlayer(player string) (models.WhoHasResult, error) {
	roster := s.api.Roster()

	name, ok := bestMatch(player, roster.Players(), 0.7)
	if !ok {
		return models.WhoHasResult{PlayerName: player, Found: false}, nil
	}
	owner, _ := roster.Owner(name)

	leaderboard, err := s.GetLeaderboard()
	if err != nil {
		return models.WhoHasResult{}, err
	}

	snapshot := payout.NewSnapshot(leaderboard.Entries)
	position, _ := payout.Lookup(snapshot, name)

	winnings := 0
	for _, record := range s.api.CalculatePayouts(snapshot).RecordsFor(owner) {
		if record.Player == name {
			winnings = record.Winnings
		}
	}

	return models.WhoHasResult{
		PlayerName: name,
		Person:     owner,
		Found:      true,
		Position:   position,
		Winnings:   winnings,
	}, nil
}
