package models

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/internal/events"
	"github.com/NomadCrew/nomad-checklist-backend/internal/metrics"
	"github.com/NomadCrew/nomad-checklist-backend/internal/store"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"go.uber.org/zap"
)

const eventSource = "checklist_model"

// Option configures ChecklistModel and ItemStatusModel.
type Option func(*base)

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithPublisher sets the destination of domain events. Without it events
// are discarded.
func WithPublisher(p types.EventPublisher) Option {
	return func(b *base) { b.publisher = p }
}

// WithMetrics enables per-operation counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) { b.metrics = m }
}

// base is the plumbing shared by the checklist and item-status services.
type base struct {
	store     store.ChecklistStore
	publisher types.EventPublisher
	metrics   *metrics.Metrics
	now       func() time.Time
	log       *zap.SugaredLogger
}

func newBase(s store.ChecklistStore, name string, opts ...Option) base {
	b := base{
		store:     s,
		publisher: events.NoopPublisher{},
		now:       time.Now,
		log:       logger.GetLogger().Named(name),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// touch returns a refresh timestamp strictly after prev, even when the clock
// has not advanced since prev was taken.
func (b *base) touch(prev time.Time) time.Time {
	t := b.now().UTC()
	if !t.After(prev) {
		t = prev.Add(time.Nanosecond)
	}
	return t
}

// publish emits an event for a committed change. Failures are logged and
// never reach the caller.
func (b *base) publish(ctx context.Context, eventType types.EventType, checklistID string, payload interface{}) {
	event, err := events.NewEvent(ctx, eventType, checklistID, payload, eventSource, b.now())
	if err == nil {
		err = b.publisher.Publish(ctx, checklistID, event)
	}
	if err != nil {
		b.log.Warnw("Failed to publish event",
			"type", eventType,
			"checklistId", checklistID,
			"error", err,
		)
	}
}

// done records the outcome of an operation. Client errors are logged at
// debug, anything else at warn.
func (b *base) done(operation string, err error) {
	b.metrics.RecordOperation(operation, err)
	if err == nil {
		return
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Type != errors.ServerError {
		b.log.Debugw("Operation rejected", "operation", operation, "error", err)
		return
	}
	b.log.Warnw("Operation failed", "operation", operation, "error", err)
}
