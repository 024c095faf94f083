// Package web serves the pool dashboard as HTML and JSON.
package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/omarshaarawi/pgapool/internal/models"
)

type Dashboarder interface {
	Dashboard() models.Dashboard
}

type Handler struct {
	service       Dashboarder
	refreshPeriod time.Duration
	mux           *http.ServeMux
}

func NewHandler(service Dashboarder, refreshPeriod time.Duration) *Handler {
	h := &Handler{
		service:       service,
		refreshPeriod: refreshPeriod,
		mux:           http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.handleDashboard)
	h.mux.HandleFunc("GET /api/dashboard", h.handleDashboardJSON)
	h.mux.HandleFunc("GET /healthz", healthCheckHandler)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type pageData struct {
	models.Dashboard
	RefreshSeconds int
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Dashboard:      h.service.Dashboard(),
		RefreshSeconds: int(h.refreshPeriod.Seconds()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		slog.Error("Error rendering dashboard", "error", err)
	}
}

func (h *Handler) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Dashboard()); err != nil {
		slog.Error("Error encoding dashboard", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"money": func(amount int) string { return fmt.Sprintf("$%d", amount) },
	"stamp": func(t time.Time) string { return t.Format("Jan 2 3:04 PM MST") },
}).Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
{{if gt .RefreshSeconds 0}}<meta http-equiv="refresh" content="{{.RefreshSeconds}}">{{end}}
<title>PGA Bachelor Party Leaderboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
th, td { border-bottom: 1px solid #ddd; padding: .4rem .6rem; text-align: left; }
.error { background: #fdecea; color: #611a15; padding: .8rem; margin-bottom: 1rem; }
</style>
</head>
<body>
<h1>🏌️ {{if .EventName}}{{.EventName}}{{else}}PGA Championship{{end}} + Bachelor Party Leaderboard</h1>
<p>Updated {{stamp .UpdatedAt}}</p>

<h2>📊 Live PGA Top 10</h2>
{{if .Unavailable}}<div class="error">{{.Error}}</div>{{end}}
<table id="leaderboard">
<thead><tr><th>Position</th><th>Player</th><th>Score</th><th>Thru</th></tr></thead>
<tbody>
{{range .TopTen}}<tr><td>{{.Position}}</td><td>{{.PlayerName}}</td><td>{{.ScoreDisplay}}</td><td>{{.Thru}}</td></tr>
{{end}}</tbody>
</table>

<h2>💸 Bachelor Party Standings</h2>
<table id="standings">
<thead><tr><th>Rank</th><th>Person</th><th>Total Winnings</th></tr></thead>
<tbody>
{{range .Standings}}<tr><td>{{.Rank}}</td><td>{{.Person}}</td><td>{{money .Total}}</td></tr>
{{end}}</tbody>
</table>

<h2>Breakdown</h2>
<table id="breakdown">
<thead><tr><th>Person</th><th>Player</th><th>Position</th><th>Winnings</th></tr></thead>
<tbody>
{{range .Breakdown}}<tr><td>{{.Person}}</td><td>{{.Player}}</td><td>{{.Position}}</td><td>{{money .Winnings}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`
