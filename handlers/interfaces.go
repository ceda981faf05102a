package handlers

import (
	"context"

	"github.com/NomadCrew/nomad-checklist-backend/models"
	"github.com/NomadCrew/nomad-checklist-backend/types"
)

// ChecklistServiceInterface defines the checklist and item operations needed by handlers
type ChecklistServiceInterface interface {
	CreateChecklist(ctx context.Context, req types.ChecklistCreate) (*types.Checklist, error)
	ListChecklists(ctx context.Context, filter types.ChecklistListFilter) ([]types.ChecklistSummary, error)
	GetChecklist(ctx context.Context, id string) (*types.ChecklistDetail, error)
	UpdateChecklist(ctx context.Context, id string, req types.ChecklistUpdate) (*types.Checklist, error)
	DeleteChecklist(ctx context.Context, id string) error

	CreateItem(ctx context.Context, req types.ChecklistItemCreate) (*types.ChecklistItem, error)
	UpdateItem(ctx context.Context, itemID string, req types.ChecklistItemUpdate) (*types.ChecklistItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemStatusServiceInterface defines the status toggle needed by handlers
type ItemStatusServiceInterface interface {
	ToggleStatus(ctx context.Context, itemID string) (*types.ChecklistItem, error)
}

var (
	_ ChecklistServiceInterface  = (*models.ChecklistModel)(nil)
	_ ItemStatusServiceInterface = (*models.ItemStatusModel)(nil)
)
