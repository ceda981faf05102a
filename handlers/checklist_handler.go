package handlers

import (
	"net/http"
	"strconv"

	"github.com/NomadCrew/nomad-checklist-backend/middleware"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
)

// allTripTypes is the list filter value the web client sends for "no filter".
const allTripTypes = "Todos"

type ChecklistHandler struct {
	service ChecklistServiceInterface
}

func NewChecklistHandler(service ChecklistServiceInterface) *ChecklistHandler {
	return &ChecklistHandler{service: service}
}

// ListChecklistsHandler godoc
// @Summary List checklists
// @Description Returns a summary of every checklist with derived item counts
// @Tags checklists
// @Produce json
// @Param tipo_viagem query string false "Trip type filter (Todos for all)"
// @Param ordenacao query string false "Sort order: recent, oldest, name_asc, name_desc"
// @Success 200 {object} types.SuccessResponse{data=[]types.ChecklistSummary}
// @Failure 400 {object} types.ErrorResponse "Invalid filter"
// @Router /checklist [get]
func (h *ChecklistHandler) ListChecklistsHandler(c *gin.Context) {
	filter := types.ChecklistListFilter{
		Sort: types.ChecklistSort(c.Query("ordenacao")),
	}
	if tripType := c.Query("tipo_viagem"); tripType != "" && tripType != allTripTypes {
		filter.TripType = types.TripType(tripType)
	}

	summaries, err := h.service.ListChecklists(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(summaries)))
	middleware.Success(c, http.StatusOK, summaries)
}

// CreateChecklistHandler godoc
// @Summary Create a checklist
// @Tags checklists
// @Accept json
// @Produce json
// @Param request body types.ChecklistCreate true "Checklist"
// @Success 201 {object} types.SuccessResponse{data=types.Checklist}
// @Failure 400 {object} types.ErrorResponse "Invalid payload or duplicate name"
// @Router /checklist [post]
func (h *ChecklistHandler) CreateChecklistHandler(c *gin.Context) {
	var req types.ChecklistCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	checklist, err := h.service.CreateChecklist(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusCreated, checklist)
}

// GetChecklistHandler godoc
// @Summary Get a checklist with its items
// @Tags checklists
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} types.SuccessResponse{data=types.ChecklistDetail}
// @Failure 400 {object} types.ErrorResponse "Invalid checklist ID"
// @Failure 404 {object} types.ErrorResponse "Checklist not found"
// @Router /checklist/{id} [get]
func (h *ChecklistHandler) GetChecklistHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetChecklist(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusOK, detail)
}

// UpdateChecklistHandler godoc
// @Summary Update a checklist
// @Tags checklists
// @Accept json
// @Produce json
// @Param id path string true "Checklist ID"
// @Param request body types.ChecklistUpdate true "Checklist"
// @Success 200 {object} types.SuccessResponse{data=types.Checklist}
// @Failure 400 {object} types.ErrorResponse "Invalid payload or duplicate name"
// @Failure 404 {object} types.ErrorResponse "Checklist not found"
// @Router /checklist/{id} [put]
func (h *ChecklistHandler) UpdateChecklistHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.ChecklistUpdate
	if !bindJSONOrError(c, &req) {
		return
	}

	checklist, err := h.service.UpdateChecklist(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusOK, checklist)
}

// DeleteChecklistHandler godoc
// @Summary Delete a checklist and its items
// @Tags checklists
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} types.SuccessResponse{data=types.MessageResponse}
// @Failure 400 {object} types.ErrorResponse "Invalid checklist ID"
// @Failure 404 {object} types.ErrorResponse "Checklist not found"
// @Router /checklist/{id} [delete]
func (h *ChecklistHandler) DeleteChecklistHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteChecklist(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusOK, types.MessageResponse{Message: "checklist deleted successfully"})
}
