package services

import (
	"context"
	"fmt"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/config"
	"github.com/NomadCrew/nomad-checklist-backend/internal/store"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"go.uber.org/zap"
)

const redisCheckTimeout = 2 * time.Second

type HealthService struct {
	store       store.ChecklistStore
	redisClient config.Pinger
	version     string
	startTime   time.Time
	log         *zap.SugaredLogger
}

// NewHealthService reports on the checklist store and, when redisClient is
// non-nil, on the Redis connection used for event delivery.
func NewHealthService(s store.ChecklistStore, redisClient config.Pinger, version string) *HealthService {
	return &HealthService{
		store:       s,
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
		log:         logger.GetLogger().Named("health"),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	storeStatus := h.checkStore(ctx)
	components["store"] = storeStatus
	if storeStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status == types.HealthStatusDown {
			overallStatus = types.HealthStatusDown
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkStore(ctx context.Context) types.HealthComponent {
	var checklists, items int
	err := h.store.View(ctx, func(tx store.Tx) error {
		checklists, items = tx.Counts()
		return nil
	})
	if err != nil {
		h.log.Errorw("Store health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Store unavailable",
		}
	}

	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: fmt.Sprintf("%d checklists, %d items", checklists, items),
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	ctx, cancel := context.WithTimeout(ctx, redisCheckTimeout)
	defer cancel()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
