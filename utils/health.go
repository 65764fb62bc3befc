package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Pinger is anything that can report reachability, such as the platform client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external collaborators.
type HealthStatus struct {
	Redis     []bool    `json:"redis"`
	Platform  bool      `json:"platform"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClients []*redis.Client, platform Pinger) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth []bool
			for _, client := range redisClients {
				checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
				_, err := client.Ping(checkCtx).Result()
				cancel()
				redisHealth = append(redisHealth, err == nil)
			}

			platformUp := false
			if platform != nil {
				checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				platformUp = platform.Ping(checkCtx) == nil
				cancel()
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealth,
				Platform:  platformUp,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
