package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/internal/store/memory"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/models"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestNewHealthService(t *testing.T) {
	service := NewHealthService(memory.NewChecklistStore(), nil, "1.0.0")

	assert.NotNil(t, service)
	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.True(t, time.Since(service.startTime) < time.Second)
}

func TestCheckHealth_StoreOnly(t *testing.T) {
	s := memory.NewChecklistStore()
	checklists := models.NewChecklistModel(s)
	list, err := checklists.CreateChecklist(context.Background(), types.ChecklistCreate{
		Name:     "Beach Trip",
		TripType: types.TripTypeBeach,
	})
	require.NoError(t, err)
	_, err = checklists.CreateItem(context.Background(), types.ChecklistItemCreate{ChecklistID: list.ID, Name: "Sunscreen"})
	require.NoError(t, err)

	health := NewHealthService(s, nil, "1.0.0").CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusUp, health.Status)
	require.Contains(t, health.Components, "store")
	assert.Equal(t, "1 checklists, 1 items", health.Components["store"].Details)
	assert.NotContains(t, health.Components, "redis")
	assert.Equal(t, "1.0.0", health.Version)
	assert.NotEmpty(t, health.Timestamp)
	assert.NotEmpty(t, health.Uptime)
}

func TestCheckHealth_Redis(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus types.HealthStatus
	}{
		{name: "redis up", wantStatus: types.HealthStatusUp},
		{name: "redis down", pingErr: errors.New("connection refused"), wantStatus: types.HealthStatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			if tt.pingErr != nil {
				mock.ExpectPing().SetErr(tt.pingErr)
			} else {
				mock.ExpectPing().SetVal("PONG")
			}

			health := NewHealthService(memory.NewChecklistStore(), db, "1.0.0").CheckHealth(context.Background())

			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.wantStatus, health.Components["redis"].Status)
			assert.Equal(t, types.HealthStatusUp, health.Components["store"].Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCheckHealth_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	health := NewHealthService(memory.NewChecklistStore(), nil, "1.0.0").CheckHealth(ctx)

	assert.Equal(t, types.HealthStatusDown, health.Status)
	assert.Equal(t, types.HealthStatusDown, health.Components["store"].Status)
}
