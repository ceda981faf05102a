package types

import (
	"context"
	"encoding/json"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
)

type EventType string

const (
	CategoryChecklist     = "CHECKLIST"
	CategoryChecklistItem = "CHECKLIST_ITEM"
)

const (
	EventTypeChecklistCreated EventType = CategoryChecklist + "_CREATED"
	EventTypeChecklistUpdated EventType = CategoryChecklist + "_UPDATED"
	EventTypeChecklistDeleted EventType = CategoryChecklist + "_DELETED"

	EventTypeItemCreated       EventType = CategoryChecklistItem + "_CREATED"
	EventTypeItemUpdated       EventType = CategoryChecklistItem + "_UPDATED"
	EventTypeItemDeleted       EventType = CategoryChecklistItem + "_DELETED"
	EventTypeItemStatusToggled EventType = CategoryChecklistItem + "_STATUS_TOGGLED"
)

type BaseEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	ChecklistID string    `json:"checklistId"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

// EventMetadata for tracking and debugging
type EventMetadata struct {
	CorrelationID string `json:"correlationId,omitempty"`
	Source        string `json:"source"`
}

type Event struct {
	BaseEvent
	Metadata EventMetadata   `json:"metadata"`
	Payload  json.RawMessage `json:"payload"`
}

func (e Event) Validate() error {
	if e.ID == "" {
		return errors.ValidationFailed("invalid event", "event ID is required")
	}
	if e.Type == "" {
		return errors.ValidationFailed("invalid event", "event type is required")
	}
	if e.ChecklistID == "" {
		return errors.ValidationFailed("invalid event", "checklist ID is required")
	}
	if e.Timestamp.IsZero() {
		return errors.ValidationFailed("invalid event", "timestamp is required")
	}
	return nil
}

// EventPublisher delivers checklist change notifications to interested
// consumers. Publishing happens after the change is committed.
type EventPublisher interface {
	Publish(ctx context.Context, checklistID string, event Event) error
}

type ItemDeletedEvent struct {
	ItemID         string `json:"itemId"`
	RemainingItems int    `json:"remainingItems"`
}

type ItemStatusToggledEvent struct {
	ItemID    string     `json:"itemId"`
	OldStatus ItemStatus `json:"oldStatus"`
	NewStatus ItemStatus `json:"newStatus"`
}
