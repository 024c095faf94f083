package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/pgapool/internal/config"
	"github.com/omarshaarawi/pgapool/internal/models"
)

type PoolService interface {
	Refresh() (*models.Leaderboard, error)
	StandingsReport() string
}

type Scheduler struct {
	s           gocron.Scheduler
	poolService PoolService
	sendMessage func(string) error
	cfg         config.Refresh
}

// NewScheduler builds the scheduler. sendMessage may be nil, in which case no
// chat posts are scheduled.
func NewScheduler(poolService PoolService, sendMessage func(string) error, cfg config.Refresh, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Location)
	if err != nil {
		slog.Error("Failed to load location", "location", cfg.Location, "error", err)
		location = time.UTC
	}

	opts = append([]gocron.SchedulerOption{gocron.WithLocation(location)}, opts...)
	s, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		poolService: poolService,
		sendMessage: sendMessage,
		cfg:         cfg,
	}, nil
}

func (s *Scheduler) Start() error {
	// Leaderboard refresh, first run immediately
	_, err := s.s.NewJob(
		gocron.DurationJob(s.cfg.Interval),
		gocron.NewTask(s.refreshLeaderboard),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	// Pool standings - tournament days, evening
	if s.sendMessage != nil && s.cfg.StandingsCron != "" {
		_, err = s.s.NewJob(
			gocron.CronJob(s.cfg.StandingsCron, false),
			gocron.NewTask(s.sendStandings),
		)
		if err != nil {
			return fmt.Errorf("failed to create standings job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) Jobs() []gocron.Job {
	return s.s.Jobs()
}

func (s *Scheduler) refreshLeaderboard() {
	if _, err := s.poolService.Refresh(); err != nil {
		slog.Error("Failed to refresh leaderboard", "error", err)
	}
}

func (s *Scheduler) sendStandings() {
	if err := s.sendMessage(s.poolService.StandingsReport()); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}
