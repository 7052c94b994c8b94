package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// FreeTierService tracks per-client request allowances in Redis.
// Counters expire with the window; nothing else is stored.
type FreeTierService struct {
	client   *redis.Client
	logger   *logrus.Logger
	requests int
	window   time.Duration
}

func NewFreeTierService(client *redis.Client, logger *logrus.Logger, requests int, window time.Duration) *FreeTierService {
	return &FreeTierService{
		client:   client,
		logger:   logger,
		requests: requests,
		window:   window,
	}
}

func freeTierKey(clientID string) string {
	return fmt.Sprintf("freetier:%s", clientID)
}

// Allow consumes one unit of the client's free allowance. Returns
// false once the window's allowance is spent. A Redis failure denies
// free access rather than handing out unmetered requests.
func (s *FreeTierService) Allow(ctx context.Context, clientID string) (bool, error) {
	key := freeTierKey(clientID)
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("incrementing free-tier counter: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			s.logger.Warnf("Failed to set free-tier TTL for %s: %v", clientID, err)
		}
	}
	return count <= int64(s.requests), nil
}

// Remaining reports how much free allowance a client has left.
func (s *FreeTierService) Remaining(ctx context.Context, clientID string) (int, error) {
	count, err := s.client.Get(ctx, freeTierKey(clientID)).Int64()
	if err == redis.Nil {
		return s.requests, nil
	}
	if err != nil {
		return 0, err
	}
	remaining := s.requests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
