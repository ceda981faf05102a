package models

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/internal/store"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/google/uuid"
)

// ChecklistModel implements checklist and item CRUD on top of a
// store.ChecklistStore. Every mutation runs its checks and writes inside a
// single store transaction. Request shape is validated by callers.
type ChecklistModel struct {
	base
}

func NewChecklistModel(s store.ChecklistStore, opts ...Option) *ChecklistModel {
	return &ChecklistModel{base: newBase(s, "checklist_model", opts...)}
}

func (m *ChecklistModel) CreateChecklist(ctx context.Context, req types.ChecklistCreate) (_ *types.Checklist, err error) {
	defer func() { m.done("create_checklist", err) }()

	var created types.Checklist
	err = m.store.Update(ctx, func(tx store.Tx) error {
		if nameTaken(tx, req.Name, "") {
			return errors.DuplicateName(req.Name)
		}

		now := m.now().UTC()
		created = types.Checklist{
			ID:          uuid.NewString(),
			Name:        req.Name,
			TripType:    req.TripType,
			Description: types.NormalizeText(req.Description),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		tx.PutChecklist(created)
		tx.SetItems(created.ID, []types.ChecklistItem{})
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Debugw("Created checklist", "checklistId", created.ID, "tripType", created.TripType)
	m.publish(ctx, types.EventTypeChecklistCreated, created.ID, created)
	return &created, nil
}

// ListChecklists returns one summary per checklist. The zero filter lists
// everything newest first; equal sort keys fall back to id order.
func (m *ChecklistModel) ListChecklists(ctx context.Context, filter types.ChecklistListFilter) (_ []types.ChecklistSummary, err error) {
	defer func() { m.done("list_checklists", err) }()

	if filter.TripType != "" && !filter.TripType.IsValid() {
		return nil, errors.ValidationFailed("invalid trip type filter", string(filter.TripType))
	}
	order, ok := types.ParseChecklistSort(string(filter.Sort))
	if !ok {
		return nil, errors.ValidationFailed("invalid sort order", string(filter.Sort))
	}

	summaries := make([]types.ChecklistSummary, 0)
	err = m.store.View(ctx, func(tx store.Tx) error {
		for _, c := range tx.Checklists() {
			if filter.TripType != "" && c.TripType != filter.TripType {
				continue
			}
			items := tx.Items(c.ID)
			summaries = append(summaries, types.ChecklistSummary{
				ID:            c.ID,
				Name:          c.Name,
				TripType:      c.TripType,
				Description:   c.Description,
				CreatedAt:     c.CreatedAt,
				TotalItems:    len(items),
				VerifiedItems: countVerified(items),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortSummaries(summaries, order)
	return summaries, nil
}

func (m *ChecklistModel) GetChecklist(ctx context.Context, id string) (_ *types.ChecklistDetail, err error) {
	defer func() { m.done("get_checklist", err) }()

	var detail types.ChecklistDetail
	err = m.store.View(ctx, func(tx store.Tx) error {
		c, ok := tx.Checklist(id)
		if !ok {
			return errors.NotFound("checklist", id)
		}
		items := tx.Items(id)
		if items == nil {
			items = []types.ChecklistItem{}
		}
		verified := countVerified(items)
		detail = types.ChecklistDetail{
			Checklist:     c,
			Items:         items,
			TotalItems:    len(items),
			VerifiedItems: verified,
			Progress:      Progress(verified, len(items)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateChecklist replaces name, trip type and description. Id and creation
// time never change.
func (m *ChecklistModel) UpdateChecklist(ctx context.Context, id string, req types.ChecklistUpdate) (_ *types.Checklist, err error) {
	defer func() { m.done("update_checklist", err) }()

	var updated types.Checklist
	err = m.store.Update(ctx, func(tx store.Tx) error {
		c, ok := tx.Checklist(id)
		if !ok {
			return errors.NotFound("checklist", id)
		}
		if nameTaken(tx, req.Name, id) {
			return errors.DuplicateName(req.Name)
		}

		c.Name = req.Name
		c.TripType = req.TripType
		c.Description = types.NormalizeText(req.Description)
		c.UpdatedAt = m.touch(c.UpdatedAt)
		tx.PutChecklist(c)
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Debugw("Updated checklist", "checklistId", id)
	m.publish(ctx, types.EventTypeChecklistUpdated, id, updated)
	return &updated, nil
}

// DeleteChecklist removes the checklist and all of its items.
func (m *ChecklistModel) DeleteChecklist(ctx context.Context, id string) (err error) {
	defer func() { m.done("delete_checklist", err) }()

	var removed int
	err = m.store.Update(ctx, func(tx store.Tx) error {
		if _, ok := tx.Checklist(id); !ok {
			return errors.NotFound("checklist", id)
		}
		removed = len(tx.Items(id))
		tx.DeleteChecklist(id)
		return nil
	})
	if err != nil {
		return err
	}

	m.log.Debugw("Deleted checklist", "checklistId", id, "itemsRemoved", removed)
	m.publish(ctx, types.EventTypeChecklistDeleted, id, map[string]interface{}{
		"id":           id,
		"itemsRemoved": removed,
	})
	return nil
}

// CreateItem appends a pending item at the end of its checklist.
func (m *ChecklistModel) CreateItem(ctx context.Context, req types.ChecklistItemCreate) (_ *types.ChecklistItem, err error) {
	defer func() { m.done("create_item", err) }()

	var created types.ChecklistItem
	err = m.store.Update(ctx, func(tx store.Tx) error {
		if _, ok := tx.Checklist(req.ChecklistID); !ok {
			return errors.NotFound("checklist", req.ChecklistID)
		}
		items := tx.Items(req.ChecklistID)
		if len(items) >= types.MaxItemsPerChecklist {
			return errors.ItemLimitReached(req.ChecklistID, types.MaxItemsPerChecklist)
		}

		created = types.ChecklistItem{
			ID:          uuid.NewString(),
			ChecklistID: req.ChecklistID,
			Name:        req.Name,
			Note:        types.NormalizeText(req.Note),
			Order:       len(items) + 1,
			Status:      types.ItemStatusPending,
			UpdatedAt:   m.now().UTC(),
		}
		tx.SetItems(req.ChecklistID, append(items, created))
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Debugw("Created checklist item", "checklistId", created.ChecklistID, "itemId", created.ID, "order", created.Order)
	m.publish(ctx, types.EventTypeItemCreated, created.ChecklistID, created)
	return &created, nil
}

// UpdateItem replaces an item's name and note. Order and status are kept.
func (m *ChecklistModel) UpdateItem(ctx context.Context, itemID string, req types.ChecklistItemUpdate) (_ *types.ChecklistItem, err error) {
	defer func() { m.done("update_item", err) }()

	var updated types.ChecklistItem
	err = m.store.Update(ctx, func(tx store.Tx) error {
		checklistID, idx, ok := tx.FindItem(itemID)
		if !ok {
			return errors.NotFound("checklist item", itemID)
		}
		items := tx.Items(checklistID)
		item := &items[idx]
		item.Name = req.Name
		item.Note = types.NormalizeText(req.Note)
		item.UpdatedAt = m.touch(item.UpdatedAt)
		tx.SetItems(checklistID, items)
		updated = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.publish(ctx, types.EventTypeItemUpdated, updated.ChecklistID, updated)
	return &updated, nil
}

// DeleteItem removes an item and renumbers the remaining items 1..N in their
// existing relative order.
func (m *ChecklistModel) DeleteItem(ctx context.Context, itemID string) (err error) {
	defer func() { m.done("delete_item", err) }()

	var checklistID string
	var remaining int
	err = m.store.Update(ctx, func(tx store.Tx) error {
		var idx int
		var ok bool
		checklistID, idx, ok = tx.FindItem(itemID)
		if !ok {
			return errors.NotFound("checklist item", itemID)
		}
		items := tx.Items(checklistID)
		items = append(items[:idx], items[idx+1:]...)
		for i := range items {
			items[i].Order = i + 1
		}
		tx.SetItems(checklistID, items)
		remaining = len(items)
		return nil
	})
	if err != nil {
		return err
	}

	m.log.Debugw("Deleted checklist item", "checklistId", checklistID, "itemId", itemID, "remaining", remaining)
	m.publish(ctx, types.EventTypeItemDeleted, checklistID, types.ItemDeletedEvent{
		ItemID:         itemID,
		RemainingItems: remaining,
	})
	return nil
}

// Progress is the verified share of total as a whole percentage, rounding
// halves up. An empty checklist has progress 0.
func Progress(verified, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(verified) / float64(total) * 100))
}

func countVerified(items []types.ChecklistItem) int {
	n := 0
	for _, item := range items {
		if item.Status == types.ItemStatusVerified {
			n++
		}
	}
	return n
}

// nameTaken reports whether any checklist other than exceptID already uses
// name, ignoring case.
func nameTaken(tx store.Tx, name, exceptID string) bool {
	for _, c := range tx.Checklists() {
		if c.ID != exceptID && c.SameName(name) {
			return true
		}
	}
	return false
}

func sortSummaries(s []types.ChecklistSummary, order types.ChecklistSort) {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i], s[j]
		switch order {
		case types.SortOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case types.SortNameAsc, types.SortNameDesc:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an != bn {
				return (an < bn) == (order == types.SortNameAsc)
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})
}
