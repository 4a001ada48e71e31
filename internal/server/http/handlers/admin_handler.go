package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
	"github.com/attesto/attesto/internal/server/http/dto"
	"github.com/attesto/attesto/internal/usecase"
)

// AdminHandler covers operations staff endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Assign handles POST /api/admin/orders/:orderID/assign.
func (h *AdminHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AssignOrder(c.Request.Context(), c.Param("orderID"), req.TranslatorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Reassign handles POST /api/admin/orders/:orderID/reassign.
func (h *AdminHandler) Reassign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ReassignOrder(c.Request.Context(), c.Param("orderID"), req.TranslatorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Complete handles POST /api/admin/orders/:orderID/complete.
func (h *AdminHandler) Complete(c *gin.Context) {
	var req dto.CompleteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	if err := h.facade.CompleteOrder(c.Request.Context(), c.Param("orderID"), req.Force); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// MarkDelivered handles POST /api/admin/orders/:orderID/mark-delivered.
func (h *AdminHandler) MarkDelivered(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	if err := h.facade.MarkDelivered(c.Request.Context(), user.ID, c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ClearRevision handles POST /api/admin/orders/:orderID/clear-revision.
func (h *AdminHandler) ClearRevision(c *gin.Context) {
	if err := h.facade.ClearRevision(c.Request.Context(), c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateOrder handles PATCH /api/admin/orders/:orderID.
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req dto.AdminOrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	upd := repository.AdminOrderUpdate{
		InternalNote: req.InternalNote,
		PriceCents:   req.PriceCents,
	}
	if err := h.facade.UpdateOrderAdminFields(c.Request.Context(), c.Param("orderID"), upd); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// CreateTranslator handles POST /api/admin/translators.
func (h *AdminHandler) CreateTranslator(c *gin.Context) {
	var req dto.CreateTranslatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	translator, err := h.facade.CreateTranslator(c.Request.Context(), usecase.CreateTranslatorParams{
		Login:            req.Login,
		Password:         req.Password,
		ContactEmail:     req.ContactEmail,
		LanguagePairs:    req.LanguagePairs,
		RatePerPageCents: req.RatePerPageCents,
		MaxPagesPerDay:   req.MaxPagesPerDay,
		CanRush:          req.CanRush,
		CanNotarize:      req.CanNotarize,
		Public:           req.Public,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTranslatorResponse(*translator))
}

// ListTranslators handles GET /api/admin/translators.
func (h *AdminHandler) ListTranslators(c *gin.Context) {
	translators, err := h.facade.Translators(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TranslatorResponse, 0, len(translators))
	for _, t := range translators {
		response = append(response, toTranslatorResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// GetTranslator handles GET /api/admin/translators/:userID.
func (h *AdminHandler) GetTranslator(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	translator, err := h.facade.Translator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTranslatorResponse(*translator))
}

// UpdateTranslator handles PATCH /api/admin/translators/:userID.
func (h *AdminHandler) UpdateTranslator(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateTranslatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	upd := model.TranslatorUpdate{
		ContactEmail:     req.ContactEmail,
		LanguagePairs:    req.LanguagePairs,
		RatePerPageCents: req.RatePerPageCents,
		MaxPagesPerDay:   req.MaxPagesPerDay,
		CanRush:          req.CanRush,
		CanNotarize:      req.CanNotarize,
		Public:           req.Public,
	}
	if req.Status != nil {
		status := model.TranslatorStatus(*req.Status)
		upd.Status = &status
	}
	if err := h.facade.UpdateTranslator(c.Request.Context(), userID, upd); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
