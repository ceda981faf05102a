package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/internal/metrics"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds configuration for RedisPublisher
type Config struct {
	PublishTimeout time.Duration
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		PublishTimeout: 5 * time.Second,
	}
}

// ChannelName is the Redis Pub/Sub channel carrying a checklist's events.
func ChannelName(checklistID string) string {
	return fmt.Sprintf("checklist:%s", checklistID)
}

// RedisPublisher implements types.EventPublisher using Redis Pub/Sub
type RedisPublisher struct {
	rdb     redis.Cmdable
	log     *zap.SugaredLogger
	metrics *metrics.Metrics
	config  Config
}

var _ types.EventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher creates a new RedisPublisher instance
func NewRedisPublisher(rdb redis.Cmdable, m *metrics.Metrics, cfg ...Config) *RedisPublisher {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0].PublishTimeout > 0 {
		config = cfg[0]
	}

	return &RedisPublisher{
		rdb:     rdb,
		log:     logger.GetLogger().Named("events"),
		metrics: m,
		config:  config,
	}
}

// Publish serializes the event as JSON onto the checklist's channel.
func (p *RedisPublisher) Publish(ctx context.Context, checklistID string, event types.Event) error {
	start := time.Now()
	defer func() {
		p.metrics.EventPublishLatency.Observe(time.Since(start).Seconds())
	}()

	if err := event.Validate(); err != nil {
		p.metrics.EventErrors.WithLabelValues("publish", "validation").Inc()
		return fmt.Errorf("invalid event: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.metrics.EventErrors.WithLabelValues("publish", "marshal").Inc()
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.PublishTimeout)
	defer cancel()

	if err := p.rdb.Publish(ctx, ChannelName(checklistID), data).Err(); err != nil {
		p.metrics.EventErrors.WithLabelValues("publish", "redis").Inc()
		return fmt.Errorf("redis publish: %w", err)
	}

	p.metrics.EventsPublished.WithLabelValues("publish", string(event.Type)).Inc()
	p.log.Debugw("Published event", "type", event.Type, "checklistId", checklistID, "eventId", event.ID)
	return nil
}
