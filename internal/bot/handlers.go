package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Reporter interface {
	LeaderboardReport() (string, error)
	StandingsReport() string
	TeamReport(person string) (string, error)
	WhoHas(player string) (string, error)
}

type Handler struct {
	reporter Reporter
}

func NewHandler(reporter Reporter) *Handler {
	return &Handler{reporter: reporter}
}

const helpText = "Available commands:\n" +
	"/leaderboard - Live PGA top 10\n" +
	"/standings - Pool standings\n" +
	"/team <person> - A person's drafted players and winnings\n" +
	"/whohas <player> - Check who drafted a player"

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch command {
	case "start":
		msg.Text = "Welcome to the PGA pool! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "leaderboard", "lb":
		h.handleLeaderboard(&msg)
	case "standings":
		msg.Text = h.reporter.StandingsReport()
	case "team":
		h.handleTeam(&msg, args)
	case "whohas":
		h.handleWhoHas(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleLeaderboard(msg *tgbotapi.MessageConfig) {
	report, err := h.reporter.LeaderboardReport()
	if err != nil {
		msg.Text = fmt.Sprintf("Error loading PGA data. Try again shortly. (%v)", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a name. Usage: /team <person>"
		return
	}
	report, err := h.reporter.TeamReport(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleWhoHas(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /whohas <player name>"
		return
	}
	result, err := h.reporter.WhoHas(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error checking who has player: %v", err)
	} else {
		msg.Text = result
	}
}
