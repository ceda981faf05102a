package handlers

import (
	"context"

	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/stretchr/testify/mock"
)

// MockChecklistService implements ChecklistServiceInterface for handler tests.
type MockChecklistService struct {
	mock.Mock
}

var _ ChecklistServiceInterface = (*MockChecklistService)(nil)

func (m *MockChecklistService) CreateChecklist(ctx context.Context, req types.ChecklistCreate) (*types.Checklist, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Checklist), args.Error(1)
}

func (m *MockChecklistService) ListChecklists(ctx context.Context, filter types.ChecklistListFilter) ([]types.ChecklistSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ChecklistSummary), args.Error(1)
}

func (m *MockChecklistService) GetChecklist(ctx context.Context, id string) (*types.ChecklistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChecklistDetail), args.Error(1)
}

func (m *MockChecklistService) UpdateChecklist(ctx context.Context, id string, req types.ChecklistUpdate) (*types.Checklist, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Checklist), args.Error(1)
}

func (m *MockChecklistService) DeleteChecklist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChecklistService) CreateItem(ctx context.Context, req types.ChecklistItemCreate) (*types.ChecklistItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChecklistItem), args.Error(1)
}

func (m *MockChecklistService) UpdateItem(ctx context.Context, itemID string, req types.ChecklistItemUpdate) (*types.ChecklistItem, error) {
	args := m.Called(ctx, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChecklistItem), args.Error(1)
}

func (m *MockChecklistService) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockItemStatusService implements ItemStatusServiceInterface for handler tests.
type MockItemStatusService struct {
	mock.Mock
}

var _ ItemStatusServiceInterface = (*MockItemStatusService)(nil)

func (m *MockItemStatusService) ToggleStatus(ctx context.Context, itemID string) (*types.ChecklistItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChecklistItem), args.Error(1)
}
