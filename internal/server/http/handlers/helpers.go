package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/server/http/dto"
	"github.com/attesto/attesto/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrPriceMismatch),
		errors.Is(err, domainErrors.ErrConflict),
		errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrPreconditionNotMet):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrUpstream):
		c.Status(http.StatusBadGateway)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                  order.ID,
		CustomerID:          order.CustomerID,
		TranslatorID:        order.TranslatorID,
		SourceLang:          order.SourceLang,
		TargetLang:          order.TargetLang,
		DocumentType:        string(order.DocumentType),
		Urgency:             string(order.Urgency),
		Pages:               order.Pages,
		Notes:               order.Notes,
		PriceCents:          order.PriceCents,
		Status:              string(order.Status),
		DeliveredAt:         order.DeliveredAt,
		FirstViewedAt:       order.FirstViewedAt,
		NeedsRevision:       order.NeedsRevision,
		RevisionMessage:     order.RevisionMessage,
		RevisionRequestedAt: order.RevisionRequestedAt,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toTranslatorResponse(t model.Translator) dto.TranslatorResponse {
	return dto.TranslatorResponse{
		UserID:           t.UserID,
		ContactEmail:     t.ContactEmail,
		LanguagePairs:    t.LanguagePairs,
		Status:           string(t.Status),
		RatePerPageCents: t.RatePerPageCents,
		MaxPagesPerDay:   t.MaxPagesPerDay,
		CanRush:          t.CanRush,
		CanNotarize:      t.CanNotarize,
		Public:           t.Public,
	}
}

func toOrderFileResponse(f model.OrderFile) dto.OrderFileResponse {
	return dto.OrderFileResponse{
		ID:          f.ID,
		FileName:    f.FileName,
		SizeBytes:   f.SizeBytes,
		ContentType: f.ContentType,
		CreatedAt:   f.CreatedAt,
	}
}
