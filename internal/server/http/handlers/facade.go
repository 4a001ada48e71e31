package handlers

import (
	"context"

	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
	"github.com/attesto/attesto/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	RegisterTranslator(ctx context.Context, login, password, contactEmail string, languagePairs []string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
}

// OrderFacade encapsulates customer-facing order operations.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, customerID int64, params usecase.SubmitOrderParams) (*model.Order, error)
	Order(ctx context.Context, caller *model.User, orderID string) (*model.Order, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error)
	TranslatorOrders(ctx context.Context, translatorID int64) ([]model.Order, error)
	AllOrders(ctx context.Context, status *model.OrderStatus) ([]model.Order, error)
	InitiateCheckout(ctx context.Context, customerID int64, orderID string, priceCents int64) (string, error)
	RequestRevision(ctx context.Context, customerID int64, orderID, message string) error
	CancelOrder(ctx context.Context, customerID int64, orderID string) error
}

// PaymentFacade applies gateway payment confirmations.
type PaymentFacade interface {
	ConfirmPayment(ctx context.Context, sessionID, confirmationID string) error
}

// AssignmentFacade covers translator self-service order operations.
type AssignmentFacade interface {
	ClaimOrder(ctx context.Context, translatorID int64, orderID string) error
	StartWork(ctx context.Context, translatorID int64, orderID string) error
}

// DeliveryFacade covers document upload and download operations.
type DeliveryFacade interface {
	UploadTranslation(ctx context.Context, translatorID int64, orderID, fileName string, data []byte) error
	TranslationURL(ctx context.Context, caller *model.User, orderID string) (string, error)
	UploadOriginal(ctx context.Context, customerID int64, orderID, fileName, contentType string, data []byte) (*model.OrderFile, int, error)
	OrderOriginals(ctx context.Context, caller *model.User, orderID string) ([]model.OrderFile, error)
	OriginalURL(ctx context.Context, caller *model.User, orderID string, fileID int64) (string, error)
}

// DirectoryFacade exposes the public translator directory.
type DirectoryFacade interface {
	PublicTranslators(ctx context.Context) ([]model.Translator, error)
}

// AdminFacade covers operations reserved for operations staff.
type AdminFacade interface {
	AssignOrder(ctx context.Context, orderID string, translatorID int64) error
	ReassignOrder(ctx context.Context, orderID string, translatorID int64) error
	CompleteOrder(ctx context.Context, orderID string, force bool) error
	MarkDelivered(ctx context.Context, adminID int64, orderID string) error
	ClearRevision(ctx context.Context, orderID string) error
	UpdateOrderAdminFields(ctx context.Context, orderID string, upd repository.AdminOrderUpdate) error
	CreateTranslator(ctx context.Context, params usecase.CreateTranslatorParams) (*model.Translator, error)
	Translator(ctx context.Context, userID int64) (*model.Translator, error)
	Translators(ctx context.Context) ([]model.Translator, error)
	UpdateTranslator(ctx context.Context, userID int64, upd model.TranslatorUpdate) error
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	OrderFacade
	PaymentFacade
	AssignmentFacade
	DeliveryFacade
	DirectoryFacade
	AdminFacade
}
