package models

import (
	"context"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/internal/store"
	"github.com/NomadCrew/nomad-checklist-backend/types"
)

// ItemStatusModel flips items between pending and verified.
type ItemStatusModel struct {
	base
}

func NewItemStatusModel(s store.ChecklistStore, opts ...Option) *ItemStatusModel {
	return &ItemStatusModel{base: newBase(s, "item_status_model", opts...)}
}

// ToggleStatus inverts the item's status in place. Position and order are
// unchanged; updatedAt always moves forward.
func (m *ItemStatusModel) ToggleStatus(ctx context.Context, itemID string) (_ *types.ChecklistItem, err error) {
	defer func() { m.done("toggle_item_status", err) }()

	var (
		toggled  types.ChecklistItem
		previous types.ItemStatus
	)
	err = m.store.Update(ctx, func(tx store.Tx) error {
		checklistID, idx, ok := tx.FindItem(itemID)
		if !ok {
			return errors.NotFound("checklist item", itemID)
		}
		items := tx.Items(checklistID)
		item := &items[idx]
		previous = item.Status
		item.Status = item.Status.Toggled()
		item.UpdatedAt = m.touch(item.UpdatedAt)
		tx.SetItems(checklistID, items)
		toggled = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Debugw("Toggled item status", "itemId", itemID, "from", previous, "to", toggled.Status)
	m.publish(ctx, types.EventTypeItemStatusToggled, toggled.ChecklistID, types.ItemStatusToggledEvent{
		ItemID:    itemID,
		OldStatus: previous,
		NewStatus: toggled.Status,
	})
	return &toggled, nil
}
