package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/shape"
	"github.com/jstittsworth/puckdata/internal/upstream"
)

// ScorePoller fetches the live scoreboard on a schedule and pushes the
// shaped games to the hub. Polled data is broadcast and discarded,
// never stored.
type ScorePoller struct {
	espn      *upstream.ESPNClient
	hub       *ScoreHub
	logger    *logrus.Logger
	cron      *cron.Cron
	interval  string
	mu        sync.Mutex
	isRunning bool
}

func NewScorePoller(espn *upstream.ESPNClient, hub *ScoreHub, logger *logrus.Logger, interval string) *ScorePoller {
	return &ScorePoller{
		espn:     espn,
		hub:      hub,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start schedules the poll loop.
func (s *ScorePoller) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("score poller is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(schedule, s.poll); err != nil {
		return fmt.Errorf("failed to schedule score poller: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Infof("Score poller started (%s)", schedule)
	return nil
}

// Stop halts the schedule and waits for an in-flight poll.
func (s *ScorePoller) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("Score poller stopped")
}

func (s *ScorePoller) poll() {
	if s.hub.ClientCount() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	scoreboard, err := s.espn.Scoreboard(ctx, "")
	if err != nil {
		s.logger.Warnf("Score poll failed: %v", err)
		return
	}
	s.hub.Broadcast(shape.Scoreboard(scoreboard))
}
