// Package distributed coordinates instances that share a redis deployment.
package distributed

import (
	"context"
	"log/slog"
	"objectviewer/internal/config"
	"objectviewer/internal/metrics"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderKey = "viewer:leader"

const resignScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`

// LeaderClient is the part of the redis client the election needs.
type LeaderClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type Election struct {
	Redis      LeaderClient
	InstanceID string // Unique identifier
	TTL        time.Duration
	logger     *slog.Logger
	isLeader   bool
	mu         sync.RWMutex
}

func NewElection(client LeaderClient, instanceID string, ttl time.Duration, logger *slog.Logger) *Election {
	if ttl <= 0 {
		ttl = config.DefaultDistributedConfig.TTL
	}

	return &Election{
		Redis:      client,
		InstanceID: instanceID,
		TTL:        ttl,
		logger:     logger,
	}
}

func (e *Election) IsLeader() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isLeader
}

func (e *Election) campaign(ctx context.Context) {
	e.setLeader(e.holdsLease(ctx))
}

// holdsLease acquires or renews the lease. An unreachable redis counts as
// not holding it, since the lease may lapse before we can renew it.
func (e *Election) holdsLease(ctx context.Context) bool {
	ok, err := e.Redis.SetNX(ctx, leaderKey, e.InstanceID, e.TTL).Result()
	if err != nil {
		e.logger.Error("failed to campaign for leadership", "error", err, "instance", e.InstanceID)
		return false
	}
	if ok {
		return true
	}

	currentLeader, err := e.Redis.Get(ctx, leaderKey).Result()
	if err != nil || currentLeader != e.InstanceID {
		return false
	}
	e.Redis.Expire(ctx, leaderKey, e.TTL)
	return true
}

func (e *Election) setLeader(isLeader bool) {
	e.mu.Lock()
	wasLeader := e.isLeader
	e.isLeader = isLeader
	e.mu.Unlock()

	if isLeader && !wasLeader {
		e.logger.Info("became leader", "instance", e.InstanceID)
		metrics.IsLeader.Set(1)
		metrics.LeadershipChanges.Inc()
	} else if !isLeader && wasLeader {
		e.logger.Info("lost leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
		metrics.LeadershipChanges.Inc()
	}
}

// Start campaigns every TTL/3 until ctx is done, then resigns.
func (e *Election) Start(ctx context.Context) {
	interval := e.TTL / 3
	if interval <= 0 {
		interval = config.DefaultDistributedConfig.TTL / 3
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.campaign(ctx)

	for {
		select {
		case <-ctx.Done():
			// ctx is already cancelled, resigning needs a fresh one
			resignCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			e.resign(resignCtx)
			cancel()
			return
		case <-ticker.C:
			e.campaign(ctx)
		}
	}
}

func (e *Election) resign(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isLeader {
		return
	}

	_, err := e.Redis.Eval(ctx, resignScript, []string{leaderKey}, e.InstanceID).Result()
	if err != nil {
		e.logger.Error("failed to resign leadership", "error", err, "instance", e.InstanceID)
	} else {
		e.logger.Info("resigned leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
	}

	e.isLeader = false
}
