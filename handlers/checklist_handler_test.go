package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/middleware"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testChecklistID = "6f1c2b9e-8d4a-4e36-9a57-3f0f6c1d2e01"
	testItemID      = "0b7d5a4c-1e2f-4a3b-8c9d-7e6f5a4b3c02"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func setupChecklistRouter(svc *MockChecklistService, status *MockItemStatusService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	checklists := NewChecklistHandler(svc)
	items := NewChecklistItemHandler(svc)
	toggles := NewItemStatusHandler(status)

	r.GET("/checklist", checklists.ListChecklistsHandler)
	r.POST("/checklist", checklists.CreateChecklistHandler)
	r.GET("/checklist/:id", checklists.GetChecklistHandler)
	r.PUT("/checklist/:id", checklists.UpdateChecklistHandler)
	r.DELETE("/checklist/:id", checklists.DeleteChecklistHandler)
	r.POST("/checklist-item", items.CreateItemHandler)
	r.PUT("/checklist-item/:id", items.UpdateItemHandler)
	r.DELETE("/checklist-item/:id", items.DeleteItemHandler)
	r.PATCH("/checklist-item-status/:id", toggles.ToggleStatusHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func sampleChecklist() *types.Checklist {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &types.Checklist{
		ID:        testChecklistID,
		Name:      "Beach Trip",
		TripType:  types.TripTypeBeach,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateChecklistHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(svc *MockChecklistService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "created",
			body: `{"nome_checklist":"Beach Trip","tipo_viagem":"Praia"}`,
			setupMock: func(svc *MockChecklistService) {
				svc.On("CreateChecklist", mock.Anything, types.ChecklistCreate{
					Name:     "Beach Trip",
					TripType: types.TripTypeBeach,
				}).Return(sampleChecklist(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "name too short",
			body:           `{"nome_checklist":"ab","tipo_viagem":"Praia"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "name with punctuation",
			body:           `{"nome_checklist":"Beach!","tipo_viagem":"Praia"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "unknown trip type",
			body:           `{"nome_checklist":"Beach Trip","tipo_viagem":"Beach"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "description too long",
			body:           `{"nome_checklist":"Beach Trip","tipo_viagem":"Praia","descricao":"` + strings.Repeat("a", 201) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "malformed json",
			body:           `{"nome_checklist":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "duplicate name",
			body: `{"nome_checklist":"beach trip","tipo_viagem":"Praia"}`,
			setupMock: func(svc *MockChecklistService) {
				svc.On("CreateChecklist", mock.Anything, mock.Anything).Return(nil, apperrors.DuplicateName("beach trip"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "DUPLICATE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockChecklistService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			r := setupChecklistRouter(svc, new(MockItemStatusService))

			w, env := doRequest(t, r, http.MethodPost, "/checklist", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.False(t, env.Success)
				assert.Equal(t, tt.expectedCode, env.Error.Code)
			} else {
				assert.True(t, env.Success)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateChecklistHandler_ValidationDetails(t *testing.T) {
	svc := new(MockChecklistService)
	r := setupChecklistRouter(svc, new(MockItemStatusService))

	_, env := doRequest(t, r, http.MethodPost, "/checklist", `{"tipo_viagem":"Praia"}`)

	var details []types.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	require.Len(t, details, 1)
	assert.Equal(t, "nome_checklist", details[0].Field)
	assert.Equal(t, "nome_checklist is required", details[0].Message)
	svc.AssertNotCalled(t, "CreateChecklist", mock.Anything, mock.Anything)
}

func TestListChecklistsHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter types.ChecklistListFilter
	}{
		{name: "no filter", query: "", wantFilter: types.ChecklistListFilter{}},
		{name: "all trip types", query: "?tipo_viagem=Todos", wantFilter: types.ChecklistListFilter{}},
		{
			name:       "trip type and sort",
			query:      "?tipo_viagem=Praia&ordenacao=name_asc",
			wantFilter: types.ChecklistListFilter{TripType: types.TripTypeBeach, Sort: types.SortNameAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockChecklistService)
			svc.On("ListChecklists", mock.Anything, tt.wantFilter).Return([]types.ChecklistSummary{
				{ID: testChecklistID, Name: "Beach Trip", TripType: types.TripTypeBeach, TotalItems: 2, VerifiedItems: 1},
			}, nil)
			r := setupChecklistRouter(svc, new(MockItemStatusService))

			w, env := doRequest(t, r, http.MethodGet, "/checklist"+tt.query, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
			var summaries []map[string]interface{}
			require.NoError(t, json.Unmarshal(env.Data, &summaries))
			require.Len(t, summaries, 1)
			assert.Equal(t, float64(2), summaries[0]["total_itens"])
			assert.Equal(t, float64(1), summaries[0]["itens_verificados"])
			svc.AssertExpectations(t)
		})
	}
}

func TestListChecklistsHandler_InvalidFilter(t *testing.T) {
	svc := new(MockChecklistService)
	svc.On("ListChecklists", mock.Anything, mock.Anything).
		Return(nil, apperrors.ValidationFailed("invalid trip type filter", "Moon"))
	r := setupChecklistRouter(svc, new(MockItemStatusService))

	w, env := doRequest(t, r, http.MethodGet, "/checklist?tipo_viagem=Moon", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestGetChecklistHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockChecklistService)
		svc.On("GetChecklist", mock.Anything, testChecklistID).Return(&types.ChecklistDetail{
			Checklist:     *sampleChecklist(),
			Items:         []types.ChecklistItem{},
			TotalItems:    4,
			VerifiedItems: 1,
			Progress:      25,
		}, nil)
		r := setupChecklistRouter(svc, new(MockItemStatusService))

		w, env := doRequest(t, r, http.MethodGet, "/checklist/"+testChecklistID, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var detail map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Equal(t, "Beach Trip", detail["nome_checklist"])
		assert.Equal(t, float64(25), detail["progresso"])
		assert.Equal(t, []interface{}{}, detail["itens"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockChecklistService)
		svc.On("GetChecklist", mock.Anything, testChecklistID).Return(nil, apperrors.NotFound("checklist", testChecklistID))
		r := setupChecklistRouter(svc, new(MockItemStatusService))

		w, env := doRequest(t, r, http.MethodGet, "/checklist/"+testChecklistID, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("invalid id never reaches the service", func(t *testing.T) {
		svc := new(MockChecklistService)
		r := setupChecklistRouter(svc, new(MockItemStatusService))

		w, env := doRequest(t, r, http.MethodGet, "/checklist/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		svc.AssertNotCalled(t, "GetChecklist", mock.Anything, mock.Anything)
	})
}

func TestUpdateChecklistHandler(t *testing.T) {
	desc := "Summer vacation"
	svc := new(MockChecklistService)
	svc.On("UpdateChecklist", mock.Anything, testChecklistID, types.ChecklistUpdate{
		Name:        "Beach Trip 2",
		TripType:    types.TripTypeBeach,
		Description: &desc,
	}).Return(sampleChecklist(), nil)
	r := setupChecklistRouter(svc, new(MockItemStatusService))

	w, env := doRequest(t, r, http.MethodPut, "/checklist/"+testChecklistID,
		`{"nome_checklist":"Beach Trip 2","tipo_viagem":"Praia","descricao":"Summer vacation"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	svc.AssertExpectations(t)
}

func TestDeleteChecklistHandler(t *testing.T) {
	svc := new(MockChecklistService)
	svc.On("DeleteChecklist", mock.Anything, testChecklistID).Return(nil)
	r := setupChecklistRouter(svc, new(MockItemStatusService))

	w, env := doRequest(t, r, http.MethodDelete, "/checklist/"+testChecklistID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var msg types.MessageResponse
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, "checklist deleted successfully", msg.Message)
	svc.AssertExpectations(t)
}
