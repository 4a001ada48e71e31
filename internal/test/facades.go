package test

import (
	"context"

	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
	"github.com/attesto/attesto/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn           func(context.Context, string, string) (string, error)
	RegisterTranslatorFn func(context.Context, string, string, string, []string) (string, error)
	AuthenticateFn       func(context.Context, string, string) (string, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// RegisterTranslator returns token for translator registration scenarios.
func (s AuthFacadeStub) RegisterTranslator(ctx context.Context, login, password, contactEmail string, languagePairs []string) (string, error) {
	if s.RegisterTranslatorFn != nil {
		return s.RegisterTranslatorFn(ctx, login, password, contactEmail, languagePairs)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitOrderFn      func(context.Context, int64, usecase.SubmitOrderParams) (*model.Order, error)
	OrderFn            func(context.Context, *model.User, string) (*model.Order, error)
	CustomerOrdersFn   func(context.Context, int64) ([]model.Order, error)
	TranslatorOrdersFn func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn        func(context.Context, *model.OrderStatus) ([]model.Order, error)
	InitiateCheckoutFn func(context.Context, int64, string, int64) (string, error)
	RequestRevisionFn  func(context.Context, int64, string, string) error
	CancelOrderFn      func(context.Context, int64, string) error

	Orders []model.Order
}

func (s OrderFacadeStub) SubmitOrder(ctx context.Context, customerID int64, params usecase.SubmitOrderParams) (*model.Order, error) {
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, customerID, params)
	}
	return &model.Order{ID: "order-1", CustomerID: customerID, Status: model.OrderStatusPendingReview}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, caller *model.User, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, caller, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPendingReview}, nil
}

func (s OrderFacadeStub) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, customerID)
	}
	return s.Orders, nil
}

func (s OrderFacadeStub) TranslatorOrders(ctx context.Context, translatorID int64) ([]model.Order, error) {
	if s.TranslatorOrdersFn != nil {
		return s.TranslatorOrdersFn(ctx, translatorID)
	}
	return s.Orders, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context, status *model.OrderStatus) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, status)
	}
	return s.Orders, nil
}

func (s OrderFacadeStub) InitiateCheckout(ctx context.Context, customerID int64, orderID string, priceCents int64) (string, error) {
	if s.InitiateCheckoutFn != nil {
		return s.InitiateCheckoutFn(ctx, customerID, orderID, priceCents)
	}
	return "https://pay.example/session", nil
}

func (s OrderFacadeStub) RequestRevision(ctx context.Context, customerID int64, orderID, message string) error {
	if s.RequestRevisionFn != nil {
		return s.RequestRevisionFn(ctx, customerID, orderID, message)
	}
	return nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, customerID int64, orderID string) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, customerID, orderID)
	}
	return nil
}

// PaymentFacadeStub simulates webhook confirmation handling.
type PaymentFacadeStub struct {
	ConfirmPaymentFn func(context.Context, string, string) error
	Confirmed        []string
}

func (s *PaymentFacadeStub) ConfirmPayment(ctx context.Context, sessionID, confirmationID string) error {
	s.Confirmed = append(s.Confirmed, confirmationID)
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, sessionID, confirmationID)
	}
	return nil
}

// AssignmentFacadeStub simulates translator self-service actions.
type AssignmentFacadeStub struct {
	ClaimOrderFn func(context.Context, int64, string) error
	StartWorkFn  func(context.Context, int64, string) error
}

func (s AssignmentFacadeStub) ClaimOrder(ctx context.Context, translatorID int64, orderID string) error {
	if s.ClaimOrderFn != nil {
		return s.ClaimOrderFn(ctx, translatorID, orderID)
	}
	return nil
}

func (s AssignmentFacadeStub) StartWork(ctx context.Context, translatorID int64, orderID string) error {
	if s.StartWorkFn != nil {
		return s.StartWorkFn(ctx, translatorID, orderID)
	}
	return nil
}

// DeliveryFacadeStub simulates document upload and download flows.
type DeliveryFacadeStub struct {
	UploadTranslationFn func(context.Context, int64, string, string, []byte) error
	TranslationURLFn    func(context.Context, *model.User, string) (string, error)
	UploadOriginalFn    func(context.Context, int64, string, string, string, []byte) (*model.OrderFile, int, error)
	OrderOriginalsFn    func(context.Context, *model.User, string) ([]model.OrderFile, error)
	OriginalURLFn       func(context.Context, *model.User, string, int64) (string, error)
}

func (s DeliveryFacadeStub) UploadTranslation(ctx context.Context, translatorID int64, orderID, fileName string, data []byte) error {
	if s.UploadTranslationFn != nil {
		return s.UploadTranslationFn(ctx, translatorID, orderID, fileName, data)
	}
	return nil
}

func (s DeliveryFacadeStub) TranslationURL(ctx context.Context, caller *model.User, orderID string) (string, error) {
	if s.TranslationURLFn != nil {
		return s.TranslationURLFn(ctx, caller, orderID)
	}
	return "https://store.example/signed", nil
}

func (s DeliveryFacadeStub) UploadOriginal(ctx context.Context, customerID int64, orderID, fileName, contentType string, data []byte) (*model.OrderFile, int, error) {
	if s.UploadOriginalFn != nil {
		return s.UploadOriginalFn(ctx, customerID, orderID, fileName, contentType, data)
	}
	return &model.OrderFile{ID: 1, OrderID: orderID, FileName: fileName}, 0, nil
}

func (s DeliveryFacadeStub) OrderOriginals(ctx context.Context, caller *model.User, orderID string) ([]model.OrderFile, error) {
	if s.OrderOriginalsFn != nil {
		return s.OrderOriginalsFn(ctx, caller, orderID)
	}
	return nil, nil
}

func (s DeliveryFacadeStub) OriginalURL(ctx context.Context, caller *model.User, orderID string, fileID int64) (string, error) {
	if s.OriginalURLFn != nil {
		return s.OriginalURLFn(ctx, caller, orderID, fileID)
	}
	return "https://store.example/signed", nil
}

// DirectoryFacadeStub simulates the public translator directory.
type DirectoryFacadeStub struct {
	PublicTranslatorsFn func(context.Context) ([]model.Translator, error)
	Translators         []model.Translator
}

func (s DirectoryFacadeStub) PublicTranslators(ctx context.Context) ([]model.Translator, error) {
	if s.PublicTranslatorsFn != nil {
		return s.PublicTranslatorsFn(ctx)
	}
	return s.Translators, nil
}

// AdminFacadeStub simulates operations staff actions.
type AdminFacadeStub struct {
	AssignOrderFn            func(context.Context, string, int64) error
	ReassignOrderFn          func(context.Context, string, int64) error
	CompleteOrderFn          func(context.Context, string, bool) error
	MarkDeliveredFn          func(context.Context, int64, string) error
	ClearRevisionFn          func(context.Context, string) error
	UpdateOrderAdminFieldsFn func(context.Context, string, repository.AdminOrderUpdate) error
	CreateTranslatorFn       func(context.Context, usecase.CreateTranslatorParams) (*model.Translator, error)
	TranslatorFn             func(context.Context, int64) (*model.Translator, error)
	TranslatorsFn            func(context.Context) ([]model.Translator, error)
	UpdateTranslatorFn       func(context.Context, int64, model.TranslatorUpdate) error
}

func (s AdminFacadeStub) AssignOrder(ctx context.Context, orderID string, translatorID int64) error {
	if s.AssignOrderFn != nil {
		return s.AssignOrderFn(ctx, orderID, translatorID)
	}
	return nil
}

func (s AdminFacadeStub) ReassignOrder(ctx context.Context, orderID string, translatorID int64) error {
	if s.ReassignOrderFn != nil {
		return s.ReassignOrderFn(ctx, orderID, translatorID)
	}
	return nil
}

func (s AdminFacadeStub) CompleteOrder(ctx context.Context, orderID string, force bool) error {
	if s.CompleteOrderFn != nil {
		return s.CompleteOrderFn(ctx, orderID, force)
	}
	return nil
}

func (s AdminFacadeStub) MarkDelivered(ctx context.Context, adminID int64, orderID string) error {
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, adminID, orderID)
	}
	return nil
}

func (s AdminFacadeStub) ClearRevision(ctx context.Context, orderID string) error {
	if s.ClearRevisionFn != nil {
		return s.ClearRevisionFn(ctx, orderID)
	}
	return nil
}

func (s AdminFacadeStub) UpdateOrderAdminFields(ctx context.Context, orderID string, upd repository.AdminOrderUpdate) error {
	if s.UpdateOrderAdminFieldsFn != nil {
		return s.UpdateOrderAdminFieldsFn(ctx, orderID, upd)
	}
	return nil
}

func (s AdminFacadeStub) CreateTranslator(ctx context.Context, params usecase.CreateTranslatorParams) (*model.Translator, error) {
	if s.CreateTranslatorFn != nil {
		return s.CreateTranslatorFn(ctx, params)
	}
	return &model.Translator{UserID: 1, Status: model.TranslatorStatusActive}, nil
}

func (s AdminFacadeStub) Translator(ctx context.Context, userID int64) (*model.Translator, error) {
	if s.TranslatorFn != nil {
		return s.TranslatorFn(ctx, userID)
	}
	return &model.Translator{UserID: userID}, nil
}

func (s AdminFacadeStub) Translators(ctx context.Context) ([]model.Translator, error) {
	if s.TranslatorsFn != nil {
		return s.TranslatorsFn(ctx)
	}
	return nil, nil
}

func (s AdminFacadeStub) UpdateTranslator(ctx context.Context, userID int64, upd model.TranslatorUpdate) error {
	if s.UpdateTranslatorFn != nil {
		return s.UpdateTranslatorFn(ctx, userID, upd)
	}
	return nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	AssignmentFacadeStub
	DeliveryFacadeStub
	DirectoryFacadeStub
	AdminFacadeStub
}

// Translators disambiguates between the AdminFacadeStub method and the
// DirectoryFacadeStub field of the same name.
func (s MarketplaceFacadeStub) Translators(ctx context.Context) ([]model.Translator, error) {
	return s.AdminFacadeStub.Translators(ctx)
}
