package handlers

import (
	"net/http"

	"github.com/NomadCrew/nomad-checklist-backend/middleware"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
)

type ChecklistItemHandler struct {
	service ChecklistServiceInterface
}

func NewChecklistItemHandler(service ChecklistServiceInterface) *ChecklistItemHandler {
	return &ChecklistItemHandler{service: service}
}

// CreateItemHandler godoc
// @Summary Add an item to a checklist
// @Description Appends a pending item at the end of the checklist. A checklist holds at most 50 items.
// @Tags checklist-items
// @Accept json
// @Produce json
// @Param request body types.ChecklistItemCreate true "Item"
// @Success 201 {object} types.SuccessResponse{data=types.ChecklistItem}
// @Failure 400 {object} types.ErrorResponse "Invalid payload or item limit reached"
// @Failure 404 {object} types.ErrorResponse "Checklist not found"
// @Router /checklist-item [post]
func (h *ChecklistItemHandler) CreateItemHandler(c *gin.Context) {
	var req types.ChecklistItemCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusCreated, item)
}

// UpdateItemHandler godoc
// @Summary Update an item's name and note
// @Tags checklist-items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body types.ChecklistItemUpdate true "Item"
// @Success 200 {object} types.SuccessResponse{data=types.ChecklistItem}
// @Failure 400 {object} types.ErrorResponse "Invalid payload"
// @Failure 404 {object} types.ErrorResponse "Item not found"
// @Router /checklist-item/{id} [put]
func (h *ChecklistItemHandler) UpdateItemHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.ChecklistItemUpdate
	if !bindJSONOrError(c, &req) {
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusOK, item)
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Description Removes the item and renumbers the remaining items of its checklist.
// @Tags checklist-items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} types.SuccessResponse{data=types.MessageResponse}
// @Failure 400 {object} types.ErrorResponse "Invalid item ID"
// @Failure 404 {object} types.ErrorResponse "Item not found"
// @Router /checklist-item/{id} [delete]
func (h *ChecklistItemHandler) DeleteItemHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusOK, types.MessageResponse{Message: "item deleted successfully"})
}
