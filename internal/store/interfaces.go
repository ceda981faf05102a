package store

import (
	"context"

	"github.com/NomadCrew/nomad-checklist-backend/types"
)

// ChecklistStore owns every checklist and item record for the process
// lifetime. Update runs fn under exclusive access; View runs fn under shared
// access. A Tx must not be retained after fn returns.
type ChecklistStore interface {
	Update(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the accessor contract services use to read and mutate store state.
// Reads return copies; absent ids resolve to "not present", never an error.
type Tx interface {
	Checklists() []types.Checklist
	Checklist(id string) (types.Checklist, bool)
	// Items returns the checklist's items in display order.
	Items(checklistID string) []types.ChecklistItem
	// FindItem locates an item by id alone, across every checklist.
	FindItem(itemID string) (checklistID string, index int, ok bool)
	Counts() (checklists int, items int)

	PutChecklist(c types.Checklist)
	// DeleteChecklist removes the checklist together with its item list.
	DeleteChecklist(id string)
	// SetItems replaces the checklist's item list.
	SetItems(checklistID string, items []types.ChecklistItem)
}
