package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/domain/model"
)

// AssignmentHandler covers translator self-service order actions.
type AssignmentHandler struct {
	facade AssignmentFacade
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(facade AssignmentFacade) *AssignmentHandler {
	return &AssignmentHandler{facade: facade}
}

// Claim handles POST /api/orders/:orderID/claim.
func (h *AssignmentHandler) Claim(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleTranslator {
		c.Status(http.StatusForbidden)
		return
	}

	if err := h.facade.ClaimOrder(c.Request.Context(), user.ID, c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// StartWork handles POST /api/orders/:orderID/start.
func (h *AssignmentHandler) StartWork(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleTranslator {
		c.Status(http.StatusForbidden)
		return
	}

	if err := h.facade.StartWork(c.Request.Context(), user.ID, c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
