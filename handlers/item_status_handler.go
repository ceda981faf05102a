package handlers

import (
	"net/http"

	"github.com/NomadCrew/nomad-checklist-backend/middleware"
	"github.com/gin-gonic/gin"
)

type ItemStatusHandler struct {
	service ItemStatusServiceInterface
}

func NewItemStatusHandler(service ItemStatusServiceInterface) *ItemStatusHandler {
	return &ItemStatusHandler{service: service}
}

// ToggleStatusHandler godoc
// @Summary Toggle an item between pendente and verificado
// @Tags checklist-items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} types.SuccessResponse{data=types.ChecklistItem}
// @Failure 400 {object} types.ErrorResponse "Invalid item ID"
// @Failure 404 {object} types.ErrorResponse "Item not found"
// @Router /checklist-item-status/{id} [patch]
func (h *ItemStatusHandler) ToggleStatusHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.Success(c, http.StatusOK, item)
}
