package app

import (
	"context"

	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
	"github.com/attesto/attesto/internal/usecase"
)

// MarketplaceFacade is the single application surface the HTTP layer talks to.
type MarketplaceFacade struct {
	auth        *usecase.AuthUseCase
	orders      *usecase.OrderUseCase
	assignments *usecase.AssignmentUseCase
	delivery    *usecase.DeliveryUseCase
	translators *usecase.TranslatorUseCase
}

func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	assignments *usecase.AssignmentUseCase,
	delivery *usecase.DeliveryUseCase,
	translators *usecase.TranslatorUseCase,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:        auth,
		orders:      orders,
		assignments: assignments,
		delivery:    delivery,
		translators: translators,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *MarketplaceFacade) RegisterTranslator(ctx context.Context, login, password, contactEmail string, languagePairs []string) (string, error) {
	_, token, err := f.auth.RegisterTranslator(ctx, login, password, contactEmail, languagePairs)
	return token, err
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *MarketplaceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketplaceFacade) Principal(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.Principal(ctx, userID)
}

func (f *MarketplaceFacade) SubmitOrder(ctx context.Context, customerID int64, params usecase.SubmitOrderParams) (*model.Order, error) {
	return f.orders.Submit(ctx, customerID, params)
}

func (f *MarketplaceFacade) Order(ctx context.Context, caller *model.User, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, caller, orderID)
}

func (f *MarketplaceFacade) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return f.orders.ListForCustomer(ctx, customerID)
}

func (f *MarketplaceFacade) TranslatorOrders(ctx context.Context, translatorID int64) ([]model.Order, error) {
	return f.orders.ListForTranslator(ctx, translatorID)
}

func (f *MarketplaceFacade) AllOrders(ctx context.Context, status *model.OrderStatus) ([]model.Order, error) {
	return f.orders.ListAll(ctx, status)
}

func (f *MarketplaceFacade) InitiateCheckout(ctx context.Context, customerID int64, orderID string, priceCents int64) (string, error) {
	return f.orders.InitiateCheckout(ctx, customerID, orderID, priceCents)
}

func (f *MarketplaceFacade) ConfirmPayment(ctx context.Context, sessionID, confirmationID string) error {
	return f.orders.ConfirmPayment(ctx, sessionID, confirmationID)
}

func (f *MarketplaceFacade) RequestRevision(ctx context.Context, customerID int64, orderID, message string) error {
	return f.orders.RequestRevision(ctx, customerID, orderID, message)
}

func (f *MarketplaceFacade) CancelOrder(ctx context.Context, customerID int64, orderID string) error {
	return f.orders.Cancel(ctx, customerID, orderID)
}

func (f *MarketplaceFacade) CompleteOrder(ctx context.Context, orderID string, force bool) error {
	return f.orders.Complete(ctx, orderID, force)
}

func (f *MarketplaceFacade) MarkDelivered(ctx context.Context, adminID int64, orderID string) error {
	return f.orders.MarkDeliveredOverride(ctx, adminID, orderID)
}

func (f *MarketplaceFacade) ClearRevision(ctx context.Context, orderID string) error {
	return f.orders.ClearRevision(ctx, orderID)
}

func (f *MarketplaceFacade) UpdateOrderAdminFields(ctx context.Context, orderID string, upd repository.AdminOrderUpdate) error {
	return f.orders.UpdateAdminFields(ctx, orderID, upd)
}

func (f *MarketplaceFacade) AssignOrder(ctx context.Context, orderID string, translatorID int64) error {
	return f.assignments.Assign(ctx, orderID, translatorID)
}

func (f *MarketplaceFacade) ReassignOrder(ctx context.Context, orderID string, translatorID int64) error {
	return f.assignments.Reassign(ctx, orderID, translatorID)
}

func (f *MarketplaceFacade) ClaimOrder(ctx context.Context, translatorID int64, orderID string) error {
	return f.assignments.Claim(ctx, translatorID, orderID)
}

func (f *MarketplaceFacade) StartWork(ctx context.Context, translatorID int64, orderID string) error {
	return f.assignments.StartWork(ctx, translatorID, orderID)
}

func (f *MarketplaceFacade) UploadTranslation(ctx context.Context, translatorID int64, orderID, fileName string, data []byte) error {
	return f.delivery.Upload(ctx, translatorID, orderID, fileName, data)
}

func (f *MarketplaceFacade) TranslationURL(ctx context.Context, caller *model.User, orderID string) (string, error) {
	return f.delivery.Download(ctx, caller, orderID)
}

func (f *MarketplaceFacade) UploadOriginal(ctx context.Context, customerID int64, orderID, fileName, contentType string, data []byte) (*model.OrderFile, int, error) {
	return f.delivery.UploadOriginal(ctx, customerID, orderID, fileName, contentType, data)
}

func (f *MarketplaceFacade) OrderOriginals(ctx context.Context, caller *model.User, orderID string) ([]model.OrderFile, error) {
	return f.delivery.ListOriginals(ctx, caller, orderID)
}

func (f *MarketplaceFacade) OriginalURL(ctx context.Context, caller *model.User, orderID string, fileID int64) (string, error) {
	return f.delivery.OriginalURL(ctx, caller, orderID, fileID)
}

func (f *MarketplaceFacade) CreateTranslator(ctx context.Context, params usecase.CreateTranslatorParams) (*model.Translator, error) {
	return f.translators.Create(ctx, params)
}

func (f *MarketplaceFacade) Translator(ctx context.Context, userID int64) (*model.Translator, error) {
	return f.translators.Get(ctx, userID)
}

func (f *MarketplaceFacade) Translators(ctx context.Context) ([]model.Translator, error) {
	return f.translators.List(ctx)
}

func (f *MarketplaceFacade) PublicTranslators(ctx context.Context) ([]model.Translator, error) {
	return f.translators.PublicDirectory(ctx)
}

func (f *MarketplaceFacade) UpdateTranslator(ctx context.Context, userID int64, upd model.TranslatorUpdate) error {
	return f.translators.Update(ctx, userID, upd)
}
