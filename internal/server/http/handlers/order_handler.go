package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/server/http/dto"
	"github.com/attesto/attesto/internal/usecase"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleCustomer {
		c.Status(http.StatusForbidden)
		return
	}

	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), user.ID, usecase.SubmitOrderParams{
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		DocumentType: req.DocumentType,
		Urgency:      req.Urgency,
		Pages:        req.Pages,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders. Scope depends on the caller's role: customers
// see their own orders, translators their assignments, admins everything.
func (h *OrderHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var (
		orders []model.Order
		err    error
	)
	switch user.Role {
	case model.RoleAdmin:
		var status *model.OrderStatus
		if raw := c.Query("status"); raw != "" {
			s := model.OrderStatus(raw)
			status = &s
		}
		orders, err = h.facade.AllOrders(c.Request.Context(), status)
	case model.RoleTranslator:
		orders, err = h.facade.TranslatorOrders(c.Request.Context(), user.ID)
	default:
		orders, err = h.facade.CustomerOrders(c.Request.Context(), user.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListAll handles GET /api/admin/orders. Role enforcement happens in the
// route group; this endpoint always returns the full book, optionally
// narrowed by ?status=.
func (h *OrderHandler) ListAll(c *gin.Context) {
	var status *model.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := model.OrderStatus(raw)
		status = &s
	}

	orders, err := h.facade.AllOrders(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /api/orders/:orderID.
func (h *OrderHandler) Get(c *gin.Context) {
	user := CurrentUser(c)
	order, err := h.facade.Order(c.Request.Context(), user, c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Checkout handles POST /api/orders/:orderID/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleCustomer {
		c.Status(http.StatusForbidden)
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sessionURL, err := h.facade.InitiateCheckout(c.Request.Context(), user.ID, c.Param("orderID"), req.PriceCents)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionURL: sessionURL})
}

// RequestRevision handles POST /api/orders/:orderID/revision.
func (h *OrderHandler) RequestRevision(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleCustomer {
		c.Status(http.StatusForbidden)
		return
	}

	var req dto.RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RequestRevision(c.Request.Context(), user.ID, c.Param("orderID"), req.Message); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Cancel handles POST /api/orders/:orderID/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleCustomer {
		c.Status(http.StatusForbidden)
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), user.ID, c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
