package test

import (
	"context"
	"time"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	CreateFn               func(context.Context, *model.Order) error
	GetByIDFn              func(context.Context, string) (*model.Order, error)
	GetByCheckoutSessionFn func(context.Context, string) (*model.Order, error)
	ListByCustomerFn       func(context.Context, int64) ([]model.Order, error)
	ListByTranslatorFn     func(context.Context, int64) ([]model.Order, error)
	ListFn                 func(context.Context, *model.OrderStatus) ([]model.Order, error)
	InitiateCheckoutFn     func(context.Context, string, int64, string) error
	ConfirmPaymentFn       func(context.Context, string, string) (*model.Order, bool, error)
	AssignFn               func(context.Context, string, int64) error
	ReassignFn             func(context.Context, string, int64) error
	ClaimFn                func(context.Context, string, int64) error
	StartWorkFn            func(context.Context, string, int64) error
	SaveDeliveryFn         func(context.Context, string, int64, string, time.Time) error
	RequestRevisionFn      func(context.Context, string, int64, string, time.Time) error
	ClearRevisionFn        func(context.Context, string) error
	CompleteFn             func(context.Context, string, bool) error
	MarkDeliveredFn        func(context.Context, string, time.Time) error
	CancelFn               func(context.Context, string, int64) error
	SetFirstViewedFn       func(context.Context, string, time.Time) error
	UpdateAdminFieldsFn    func(context.Context, string, repository.AdminOrderUpdate) error

	Created         []*model.Order
	Orders          []model.Order
	FirstViewed     []string
	SavedDeliveries []SavedDelivery
}

// SavedDelivery records one SaveDelivery invocation.
type SavedDelivery struct {
	OrderID      string
	TranslatorID int64
	Path         string
	DeliveredAt  time.Time
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByCheckoutSession(ctx context.Context, sessionID string) (*model.Order, error) {
	if s.GetByCheckoutSessionFn != nil {
		return s.GetByCheckoutSessionFn(ctx, sessionID)
	}
	for _, o := range s.Orders {
		if o.CheckoutSessionID != nil && *o.CheckoutSessionID == sessionID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) ListByTranslator(ctx context.Context, translatorID int64) ([]model.Order, error) {
	if s.ListByTranslatorFn != nil {
		return s.ListByTranslatorFn(ctx, translatorID)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context, status *model.OrderStatus) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, status)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) InitiateCheckout(ctx context.Context, orderID string, priceCents int64, sessionID string) error {
	if s.InitiateCheckoutFn != nil {
		return s.InitiateCheckoutFn(ctx, orderID, priceCents, sessionID)
	}
	return nil
}

func (s *OrderRepositoryStub) ConfirmPayment(ctx context.Context, sessionID, confirmationID string) (*model.Order, bool, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, sessionID, confirmationID)
	}
	return nil, false, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) Assign(ctx context.Context, orderID string, translatorID int64) error {
	if s.AssignFn != nil {
		return s.AssignFn(ctx, orderID, translatorID)
	}
	return nil
}

func (s *OrderRepositoryStub) Reassign(ctx context.Context, orderID string, translatorID int64) error {
	if s.ReassignFn != nil {
		return s.ReassignFn(ctx, orderID, translatorID)
	}
	return nil
}

func (s *OrderRepositoryStub) Claim(ctx context.Context, orderID string, translatorID int64) error {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, orderID, translatorID)
	}
	return nil
}

func (s *OrderRepositoryStub) StartWork(ctx context.Context, orderID string, translatorID int64) error {
	if s.StartWorkFn != nil {
		return s.StartWorkFn(ctx, orderID, translatorID)
	}
	return nil
}

func (s *OrderRepositoryStub) SaveDelivery(ctx context.Context, orderID string, translatorID int64, path string, deliveredAt time.Time) error {
	if s.SaveDeliveryFn != nil {
		return s.SaveDeliveryFn(ctx, orderID, translatorID, path, deliveredAt)
	}
	s.SavedDeliveries = append(s.SavedDeliveries, SavedDelivery{OrderID: orderID, TranslatorID: translatorID, Path: path, DeliveredAt: deliveredAt})
	return nil
}

func (s *OrderRepositoryStub) RequestRevision(ctx context.Context, orderID string, customerID int64, message string, requestedAt time.Time) error {
	if s.RequestRevisionFn != nil {
		return s.RequestRevisionFn(ctx, orderID, customerID, message, requestedAt)
	}
	return nil
}

func (s *OrderRepositoryStub) ClearRevision(ctx context.Context, orderID string) error {
	if s.ClearRevisionFn != nil {
		return s.ClearRevisionFn(ctx, orderID)
	}
	return nil
}

func (s *OrderRepositoryStub) Complete(ctx context.Context, orderID string, force bool) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, orderID, force)
	}
	return nil
}

func (s *OrderRepositoryStub) MarkDeliveredOverride(ctx context.Context, orderID string, deliveredAt time.Time) error {
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, orderID, deliveredAt)
	}
	return nil
}

func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID string, customerID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, customerID)
	}
	return nil
}

func (s *OrderRepositoryStub) SetFirstViewed(ctx context.Context, orderID string, viewedAt time.Time) error {
	if s.SetFirstViewedFn != nil {
		return s.SetFirstViewedFn(ctx, orderID, viewedAt)
	}
	s.FirstViewed = append(s.FirstViewed, orderID)
	return nil
}

func (s *OrderRepositoryStub) UpdateAdminFields(ctx context.Context, orderID string, upd repository.AdminOrderUpdate) error {
	if s.UpdateAdminFieldsFn != nil {
		return s.UpdateAdminFieldsFn(ctx, orderID, upd)
	}
	return nil
}

// TranslatorRepositoryStub stores translator profiles in-memory for tests.
type TranslatorRepositoryStub struct {
	Profiles map[int64]*model.Translator
	CreateFn func(context.Context, *model.Translator) error
	UpdateFn func(context.Context, int64, model.TranslatorUpdate) error
	ListFn   func(context.Context, bool) ([]model.Translator, error)
	Err      error
}

// NewTranslatorRepositoryStub constructs stub repository with initialized map.
func NewTranslatorRepositoryStub() *TranslatorRepositoryStub {
	return &TranslatorRepositoryStub{Profiles: make(map[int64]*model.Translator)}
}

func (s *TranslatorRepositoryStub) Create(ctx context.Context, translator *model.Translator) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, translator)
	}
	if s.Err != nil {
		return s.Err
	}
	if s.Profiles == nil {
		s.Profiles = make(map[int64]*model.Translator)
	}
	s.Profiles[translator.UserID] = translator
	return nil
}

func (s *TranslatorRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Translator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.Profiles[userID]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *TranslatorRepositoryStub) List(ctx context.Context, publicOnly bool) ([]model.Translator, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, publicOnly)
	}
	var out []model.Translator
	for _, profile := range s.Profiles {
		if publicOnly && !(profile.Public && profile.Status == model.TranslatorStatusActive) {
			continue
		}
		out = append(out, *profile)
	}
	return out, nil
}

func (s *TranslatorRepositoryStub) Update(ctx context.Context, userID int64, upd model.TranslatorUpdate) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, upd)
	}
	if _, ok := s.Profiles[userID]; !ok {
		return domainErrors.ErrNotFound
	}
	return nil
}

// OrderFileRepositoryStub stores source document rows in-memory for tests.
type OrderFileRepositoryStub struct {
	Files  []model.OrderFile
	Next   int64
	AddErr error
}

func (s *OrderFileRepositoryStub) Add(ctx context.Context, file *model.OrderFile) (*model.OrderFile, error) {
	if s.AddErr != nil {
		return nil, s.AddErr
	}
	s.Next++
	stored := *file
	stored.ID = s.Next
	s.Files = append(s.Files, stored)
	return &stored, nil
}

func (s *OrderFileRepositoryStub) ListByOrder(ctx context.Context, orderID string) ([]model.OrderFile, error) {
	var out []model.OrderFile
	for _, f := range s.Files {
		if f.OrderID == orderID {
			out = append(out, f)
		}
	}
	return out, nil
}
