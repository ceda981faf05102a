// Package memory provides the in-process checklist store. Data lives only in
// process memory and is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/NomadCrew/nomad-checklist-backend/internal/store"
	"github.com/NomadCrew/nomad-checklist-backend/types"
)

// Compile-time contract assertion.
var _ store.ChecklistStore = (*ChecklistStore)(nil)

type memoryState struct {
	checklists map[string]types.Checklist
	items      map[string][]types.ChecklistItem
	// itemIndex maps item id to owning checklist id.
	itemIndex map[string]string
}

func newMemoryState() memoryState {
	return memoryState{
		checklists: make(map[string]types.Checklist),
		items:      make(map[string][]types.ChecklistItem),
		itemIndex:  make(map[string]string),
	}
}

// CommitHook observes store sizes after every successful Update.
type CommitHook func(checklists, items int)

// ChecklistStore is a mutex-guarded implementation of store.ChecklistStore.
type ChecklistStore struct {
	mu    sync.RWMutex
	state memoryState
	hooks []CommitHook
}

// NewChecklistStore creates an empty store.
func NewChecklistStore(hooks ...CommitHook) *ChecklistStore {
	return &ChecklistStore{
		state: newMemoryState(),
		hooks: hooks,
	}
}

// Update executes fn with exclusive access. If fn returns an error or panics,
// every change it made is rolled back before the lock is released.
func (s *ChecklistStore) Update(ctx context.Context, fn func(tx store.Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{state: &s.state, writable: true}
	defer func() {
		if r := recover(); r != nil {
			tx.rollback()
			panic(r)
		}
	}()

	if err = fn(tx); err != nil {
		tx.rollback()
		return err
	}

	if len(s.hooks) > 0 {
		checklists, items := tx.Counts()
		for _, hook := range s.hooks {
			hook(checklists, items)
		}
	}
	return nil
}

// View executes fn with shared access. Mutating accessors panic inside View.
func (s *ChecklistStore) View(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&transaction{state: &s.state})
}

type undoEntry struct {
	checklistID  string
	checklist    types.Checklist
	hadChecklist bool
	items        []types.ChecklistItem
	hadItems     bool
}

type transaction struct {
	state    *memoryState
	writable bool
	undo     []undoEntry
	saved    map[string]bool
}

func (tx *transaction) Checklists() []types.Checklist {
	out := make([]types.Checklist, 0, len(tx.state.checklists))
	for _, c := range tx.state.checklists {
		out = append(out, cloneChecklist(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (tx *transaction) Checklist(id string) (types.Checklist, bool) {
	c, ok := tx.state.checklists[id]
	if !ok {
		return types.Checklist{}, false
	}
	return cloneChecklist(c), true
}

func (tx *transaction) Items(checklistID string) []types.ChecklistItem {
	return cloneItems(tx.state.items[checklistID])
}

func (tx *transaction) FindItem(itemID string) (string, int, bool) {
	checklistID, ok := tx.state.itemIndex[itemID]
	if !ok {
		return "", -1, false
	}
	for i, item := range tx.state.items[checklistID] {
		if item.ID == itemID {
			return checklistID, i, true
		}
	}
	return "", -1, false
}

func (tx *transaction) Counts() (int, int) {
	return len(tx.state.checklists), len(tx.state.itemIndex)
}

func (tx *transaction) PutChecklist(c types.Checklist) {
	tx.mustWrite()
	tx.save(c.ID)
	tx.state.checklists[c.ID] = cloneChecklist(c)
}

func (tx *transaction) DeleteChecklist(id string) {
	tx.mustWrite()
	tx.save(id)
	for _, item := range tx.state.items[id] {
		delete(tx.state.itemIndex, item.ID)
	}
	delete(tx.state.checklists, id)
	delete(tx.state.items, id)
}

func (tx *transaction) SetItems(checklistID string, items []types.ChecklistItem) {
	tx.mustWrite()
	tx.save(checklistID)
	for _, item := range tx.state.items[checklistID] {
		delete(tx.state.itemIndex, item.ID)
	}
	tx.state.items[checklistID] = cloneItems(items)
	for _, item := range items {
		tx.state.itemIndex[item.ID] = checklistID
	}
}

func (tx *transaction) mustWrite() {
	if !tx.writable {
		panic("memory store: mutation attempted inside View")
	}
}

// save records the pre-transaction state of a checklist once per transaction.
func (tx *transaction) save(checklistID string) {
	if tx.saved == nil {
		tx.saved = make(map[string]bool)
	}
	if tx.saved[checklistID] {
		return
	}
	tx.saved[checklistID] = true

	entry := undoEntry{checklistID: checklistID}
	entry.checklist, entry.hadChecklist = tx.state.checklists[checklistID]
	var items []types.ChecklistItem
	items, entry.hadItems = tx.state.items[checklistID]
	entry.items = cloneItems(items)
	tx.undo = append(tx.undo, entry)
}

func (tx *transaction) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		entry := tx.undo[i]
		for _, item := range tx.state.items[entry.checklistID] {
			delete(tx.state.itemIndex, item.ID)
		}
		if entry.hadChecklist {
			tx.state.checklists[entry.checklistID] = entry.checklist
		} else {
			delete(tx.state.checklists, entry.checklistID)
		}
		if entry.hadItems {
			tx.state.items[entry.checklistID] = entry.items
			for _, item := range entry.items {
				tx.state.itemIndex[item.ID] = entry.checklistID
			}
		} else {
			delete(tx.state.items, entry.checklistID)
		}
	}
	tx.undo = nil
	tx.saved = nil
}

func cloneChecklist(c types.Checklist) types.Checklist {
	c.Description = cloneText(c.Description)
	return c
}

func cloneItems(items []types.ChecklistItem) []types.ChecklistItem {
	if items == nil {
		return nil
	}
	out := make([]types.ChecklistItem, len(items))
	for i, item := range items {
		item.Note = cloneText(item.Note)
		out[i] = item
	}
	return out
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
