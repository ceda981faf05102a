package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context whose published events carry id in
// their metadata.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// NewEvent builds a versioned event around payload for the given checklist.
func NewEvent(ctx context.Context, eventType types.EventType, checklistID string, payload interface{}, source string, at time.Time) (types.Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return types.Event{}, fmt.Errorf("marshal event payload: %w", err)
	}

	event := types.Event{
		BaseEvent: types.BaseEvent{
			ID:          uuid.NewString(),
			Type:        eventType,
			ChecklistID: checklistID,
			Timestamp:   at.UTC(),
			Version:     1,
		},
		Metadata: types.EventMetadata{
			Source: source,
		},
		Payload: data,
	}
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		event.Metadata.CorrelationID = id
	}
	return event, nil
}

// NoopPublisher discards every event. It is used when event delivery is
// disabled.
type NoopPublisher struct{}

var _ types.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, string, types.Event) error { return nil }
