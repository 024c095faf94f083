// Package draft holds the compiled-in pool configuration: who drafted which
// golfers and what each finishing position pays.
package draft

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/pgapool/internal/names"
)

const PlayersPerTeam = 8

type Team struct {
	Person  string
	Players []string
}

// Roster is ordered; ties in the standings keep this order.
type Roster []Team

// PrizeTable maps an untied finishing position ("1".."10") to dollars.
type PrizeTable map[string]int

var Pool = Roster{
	{Person: "James Trimble", Players: []string{
		"Scottie Scheffler", "Jordan Spieth", "Shane Lowry", "Max Homa",
		"Sahith Theegala", "Cameron Young", "Harris English", "Keegan Bradley",
	}},
	{Person: "Jack Rushin", Players: []string{
		"Rory McIlroy", "Viktor Hovland", "Sepp Straka", "Tony Finau",
		"Min Woo Lee", "Billy Horschel", "Adam Scott", "Denny McCarthy",
	}},
	{Person: "Jimmy Mangan", Players: []string{
		"Bryson DeChambeau", "Brooks Koepka", "Russell Henley", "Dustin Johnson",
		"Cameron Smith", "Akshay Bhatia", "Chris Kirk", "Nick Taylor",
	}},
	{Person: "John Funkhouser", Players: []string{
		"Jon Rahm", "Hideki Matsuyama", "Corey Conners", "Tom Kim",
		"Sam Burns", "Robert MacIntyre", "Lucas Glover", "Byeong Hun An",
	}},
	{Person: "Joseph Bauer", Players: []string{
		"Xander Schauffele", "Patrick Cantlay", "Jason Day", "Justin Rose",
		"Matt Fitzpatrick", "Aaron Rai", "Davis Thompson", "Maverick McNealy",
	}},
	{Person: "Rich Wehman", Players: []string{
		"Justin Thomas", "Tommy Fleetwood", "Wyndham Clark", "Max Greyserman",
		"Rickie Fowler", "Thomas Detry", "J.T. Poston", "Stephan Jaeger",
	}},
	{Person: "Jack Byrne", Players: []string{
		"Collin Morikawa", "Tyrrell Hatton", "Sungjae Im", "Si Woo Kim",
		"Brian Harman", "Taylor Pendrith", "Nicolai Højgaard", "Kurt Kitayama",
	}},
	{Person: "Matthew Bauer", Players: []string{
		"Ludvig Åberg", "Joaquin Niemann", "Patrick Reed", "Tom Hoge",
		"Daniel Berger", "Michael Kim", "Andrew Novak", "Rasmus Højgaard",
	}},
}

var Prizes = PrizeTable{
	"1":  198,
	"2":  143,
	"3":  119,
	"4":  99,
	"5":  83,
	"6":  70,
	"7":  59,
	"8":  50,
	"9":  43,
	"10": 36,
}

// Validate checks that every person drafted exactly PlayersPerTeam golfers
// and that no golfer was drafted twice.
func (r Roster) Validate() error {
	seenPeople := make(map[string]bool)
	seenPlayers := make(map[string]string)

	for _, team := range r {
		if team.Person == "" {
			return fmt.Errorf("team with empty person name")
		}
		if seenPeople[team.Person] {
			return fmt.Errorf("person %q listed twice", team.Person)
		}
		seenPeople[team.Person] = true

		if len(team.Players) != PlayersPerTeam {
			return fmt.Errorf("%s has %d players, want %d", team.Person, len(team.Players), PlayersPerTeam)
		}
		for _, player := range team.Players {
			key := names.Fold(player)
			if owner, ok := seenPlayers[key]; ok {
				return fmt.Errorf("%s drafted by both %s and %s", player, owner, team.Person)
			}
			seenPlayers[key] = team.Person
		}
	}
	return nil
}

func (r Roster) People() []string {
	people := make([]string, len(r))
	for i, team := range r {
		people[i] = team.Person
	}
	return people
}

func (r Roster) Team(person string) (Team, bool) {
	for _, team := range r {
		if names.Equal(team.Person, person) {
			return team, true
		}
	}
	return Team{}, false
}

// Owner returns the person who drafted player.
func (r Roster) Owner(player string) (string, bool) {
	for _, team := range r {
		for _, p := range team.Players {
			if names.Equal(p, player) {
				return team.Person, true
			}
		}
	}
	return "", false
}

func (r Roster) Players() []string {
	var players []string
	for _, team := range r {
		players = append(players, team.Players...)
	}
	return players
}

// Winnings returns the payout for a position label. A leading tie marker is
// ignored ("T2" pays as "2"); any label outside the table pays 0.
func (p PrizeTable) Winnings(position string) int {
	label := strings.TrimSpace(position)
	label = strings.TrimPrefix(strings.TrimPrefix(label, "T"), "t")
	return p[label]
}
