package espn

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/omarshaarawi/pgapool/internal/config"
	"github.com/omarshaarawi/pgapool/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaderboardJSON = `{
  "events": [{
    "id": "401703511",
    "name": "PGA Championship",
    "competitions": [{
      "id": "401703511",
      "competitors": [
        {"athlete": {"displayName": "Jordan Spieth"}, "score": "-9", "status": {"thru": 18, "position": {"displayName": "T2"}}},
        {"athlete": {"displayName": "Tiger Woods"}, "score": "WD", "status": {"position": {"displayName": "-"}}},
        {"athlete": {"displayName": "Scottie Scheffler"}, "score": {"value": -11, "displayValue": "-11"}, "status": {"thru": "F", "position": {"displayName": "1"}}},
        {"athlete": {"displayName": "Shane Lowry"}, "score": "-9", "status": {"thru": 16, "position": {"displayName": "T2"}}},
        {"athlete": {"displayName": "Max Homa"}, "score": "E", "status": {"thru": 12, "position": {"displayName": "T40"}}},
        {"athlete": {"displayName": "Tony Finau"}, "score": "+3", "position": "T70"},
        {"athlete": {"displayName": "Adam Scott"}, "score": "", "status": {}}
      ]
    }]
  }]
}`

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.ESPNAPI{
		LeaderboardURL: server.URL,
		Timeout:        2 * time.Second,
		MaxFailures:    2,
	})
	api := NewAPI(client)
	api.now = func() time.Time { return time.Date(2025, 5, 18, 20, 0, 0, 0, time.UTC) }
	return api
}

func TestGetLeaderboard_Success(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(leaderboardJSON))
	})

	lb, err := api.GetLeaderboard()
	require.NoError(t, err)

	assert.Equal(t, "PGA Championship", lb.EventName)
	assert.Equal(t, time.Date(2025, 5, 18, 20, 0, 0, 0, time.UTC), lb.FetchedAt)
	require.Len(t, lb.Entries, 7)

	var players []string
	for _, e := range lb.Entries {
		players = append(players, e.PlayerName)
	}
	assert.Equal(t, []string{
		"Scottie Scheffler", "Jordan Spieth", "Shane Lowry", "Max Homa", "Tony Finau",
		"Tiger Woods", "Adam Scott",
	}, players)

	assert.Equal(t, models.LeaderboardEntry{
		Position: "1", PlayerName: "Scottie Scheffler", Score: -11, ScoreValid: true, ScoreDisplay: "-11", Thru: "F",
	}, lb.Entries[0])
	assert.Equal(t, "16", lb.Entries[2].Thru)
	assert.Equal(t, 0, lb.Entries[3].Score)
	assert.True(t, lb.Entries[3].ScoreValid)
	assert.Equal(t, "T70", lb.Entries[4].Position)
	assert.Equal(t, "-", lb.Entries[4].Thru)

	assert.False(t, lb.Entries[5].ScoreValid)
	assert.Equal(t, "WD", lb.Entries[5].ScoreDisplay)
	assert.Equal(t, models.PositionUnranked, lb.Entries[5].Position)
	assert.False(t, lb.Entries[6].ScoreValid)
}

func TestGetLeaderboard_EventParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "401703511", r.URL.Query().Get("event"))
		w.Write([]byte(leaderboardJSON))
	}))
	defer server.Close()

	api := NewAPI(NewClient(config.ESPNAPI{LeaderboardURL: server.URL, EventID: "401703511", Timeout: time.Second}))

	_, err := api.GetLeaderboard()
	require.NoError(t, err)
}

func TestGetLeaderboard_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no events key", `{"leaders": []}`},
		{"empty events", `{"events": []}`},
		{"no competitions", `{"events": [{"name": "PGA"}]}`},
		{"no competitors", `{"events": [{"competitions": [{"id": "1"}]}]}`},
		{"no athlete", `{"events": [{"competitions": [{"competitors": [{"score": "-1"}]}]}]}`},
		{"blank name", `{"events": [{"competitions": [{"competitors": [{"athlete": {"displayName": " "}}]}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			lb, err := api.GetLeaderboard()
			assert.Nil(t, lb)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestGetLeaderboard_EmptyField(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": [{"name": "Masters", "competitions": [{"competitors": []}]}]}`))
	})

	lb, err := api.GetLeaderboard()
	require.NoError(t, err)
	assert.Equal(t, "Masters", lb.EventName)
	assert.Empty(t, lb.Entries)
}

func TestGetLeaderboard_ParseError(t *testing.T) {
	for _, body := range []string{`<html>down for maintenance</html>`, `{"events": "soon"}`, `{"events": [{"competitions": [{"competitors": [{"score": true}]}]}]}`} {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		lb, err := api.GetLeaderboard()
		assert.Nil(t, lb)
		assert.ErrorIs(t, err, ErrParse, body)
	}
}

func TestGetLeaderboard_ServerError(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	lb, err := api.GetLeaderboard()
	assert.Nil(t, lb)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorContains(t, err, "503")
}

func TestGetLeaderboard_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	api := NewAPI(NewClient(config.ESPNAPI{LeaderboardURL: url, Timeout: time.Second}))

	_, err := api.GetLeaderboard()
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGetLeaderboard_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 4; i++ {
		_, err := api.GetLeaderboard()
		assert.ErrorIs(t, err, ErrNetwork)
	}

	assert.Equal(t, int32(2), calls.Load())
}

func TestGetLeaderboard_SchemaErrorsDoNotOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"events": []}`))
	})

	for i := 0; i < 4; i++ {
		_, err := api.GetLeaderboard()
		assert.ErrorIs(t, err, ErrSchema)
	}

	assert.Equal(t, int32(4), calls.Load())
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"-11", -11, true},
		{"+3", 3, true},
		{"E", 0, true},
		{"e", 0, true},
		{"4", 4, true},
		{"WD", 0, false},
		{"-", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseScore(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.valid, ok, tt.in)
	}
}

func TestTopN(t *testing.T) {
	entries := make([]models.LeaderboardEntry, 15)
	assert.Len(t, TopN(entries, 10), 10)
	assert.Len(t, TopN(entries[:4], 10), 4)
	assert.Empty(t, TopN(nil, 10))
}
