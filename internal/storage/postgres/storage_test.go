package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
)

func newMockStorage(t *testing.T) (*Storage, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

var orderCols = []string{
	"id", "customer_id", "translator_id", "source_lang", "target_lang", "document_type", "urgency",
	"pages", "notes", "price_cents", "checkout_session_id", "payment_confirmation_id", "status",
	"translated_file_path", "delivered_at", "first_viewed_at", "needs_revision", "revision_message",
	"revision_requested_at", "internal_note", "created_at", "updated_at",
}

func orderRow(status model.OrderStatus, translatorID *int64, confirmationID *string) *pgxmock.Rows {
	price := int64(5800)
	session := "cs_123"
	now := time.Now()
	return pgxmock.NewRows(orderCols).AddRow(
		"ord-1", int64(10), translatorID, "en", "de", "certificate", "standard",
		2, "", &price, &session, confirmationID, string(status),
		nil, nil, nil, false, nil,
		nil, "", now, now,
	)
}

func TestUserCreateDuplicateLogin(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("dup", "hash", "customer").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Users().Create(context.Background(), "dup", "hash", model.RoleCustomer)
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	price := int64(5800)
	order := &model.Order{
		ID:           "ord-1",
		CustomerID:   10,
		SourceLang:   "en",
		TargetLang:   "de",
		DocumentType: model.DocumentCertificate,
		Urgency:      model.UrgencyStandard,
		Pages:        2,
		PriceCents:   &price,
		Status:       model.OrderStatusPendingReview,
	}
	if err := storage.Orders().Create(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be populated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitiateCheckoutSuccess(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WithArgs("checkout_initiated", int64(5800), "cs_123", "ord-1", "pending_review").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := storage.Orders().InitiateCheckout(context.Background(), "ord-1", 5800, "cs_123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitiateCheckoutWrongStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WithArgs("ord-1").
		WillReturnRows(orderRow(model.OrderStatusPaid, nil, nil))

	err := storage.Orders().InitiateCheckout(context.Background(), "ord-1", 5800, "cs_123")
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error, got %v", err)
	}
	var pe *domainErrors.PreconditionError
	if !errors.As(err, &pe) || pe.Current != "paid" {
		t.Fatalf("unexpected precondition detail: %v", err)
	}
}

func TestConfirmPaymentApplies(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE orders`).
		WithArgs("paid", "pi_42", "cs_123", "checkout_initiated").
		WillReturnRows(orderRow(model.OrderStatusPaid, nil, strPtr("pi_42")))

	order, applied, err := storage.Orders().ConfirmPayment(context.Background(), "cs_123", "pi_42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatal("expected confirmation to be applied")
	}
	if order.Status != model.OrderStatusPaid {
		t.Fatalf("unexpected status %s", order.Status)
	}
}

func TestConfirmPaymentReplayIsNoOp(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	// Conditional update misses because the order already advanced.
	mock.ExpectQuery(`UPDATE orders`).
		WillReturnRows(pgxmock.NewRows(orderCols))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE checkout_session_id=\$1`).
		WithArgs("cs_123").
		WillReturnRows(orderRow(model.OrderStatusPaid, nil, strPtr("pi_42")))

	order, applied, err := storage.Orders().ConfirmPayment(context.Background(), "cs_123", "pi_42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("expected replay to be a no-op")
	}
	if order.PaymentConfirmationID == nil || *order.PaymentConfirmationID != "pi_42" {
		t.Fatal("expected stored confirmation id to be returned")
	}
}

func TestConfirmPaymentForeignConfirmationRejected(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE orders`).
		WillReturnRows(pgxmock.NewRows(orderCols))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE checkout_session_id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusPaid, nil, strPtr("pi_other")))

	_, _, err := storage.Orders().ConfirmPayment(context.Background(), "cs_123", "pi_42")
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestAssignSuccess(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WithArgs("assigned", int64(7), "ord-1", "paid").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := storage.Orders().Assign(context.Background(), "ord-1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClaimLostRaceIsConflict(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	winner := int64(8)
	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusInProgress, &winner, nil))

	err := storage.Orders().Claim(context.Background(), "ord-1", 7)
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) && !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected precondition or conflict, got %v", err)
	}
}

func TestStartWorkWrongTranslatorUnauthorized(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	assigned := int64(8)
	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusAssigned, &assigned, nil))

	err := storage.Orders().StartWork(context.Background(), "ord-1", 7)
	if !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestSaveDeliveryClearsRevision(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	deliveredAt := time.Now()
	mock.ExpectExec(`UPDATE orders`).
		WithArgs("delivered", "orders/ord-1/7/translation.pdf", deliveredAt,
			"ord-1", "in_progress", "revision_requested", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := storage.Orders().SaveDelivery(context.Background(), "ord-1", 7, "orders/ord-1/7/translation.pdf", deliveredAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRequestRevisionWrongOwner(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusDelivered, nil, nil))

	err := storage.Orders().RequestRevision(context.Background(), "ord-1", 99, "fix page two", time.Now())
	if !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRequestRevisionWrongStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusInProgress, nil, nil))

	err := storage.Orders().RequestRevision(context.Background(), "ord-1", 10, "fix page two", time.Now())
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestSetFirstViewedRepeatIsNoOp(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders SET first_viewed_at`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := storage.Orders().SetFirstViewed(context.Background(), "ord-1", time.Now()); err != nil {
		t.Fatalf("expected repeat view to be silent, got %v", err)
	}
}

func TestCompleteForceRejectsTerminal(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusCancelled, nil, nil))

	err := storage.Orders().Complete(context.Background(), "ord-1", true)
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestCompleteForceRejectsUnassignedOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`(?s)UPDATE orders SET status=.+translator_id IS NOT NULL`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusPaid, nil, nil))

	err := storage.Orders().Complete(context.Background(), "ord-1", true)
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestMarkDeliveredOverrideRejectsUnassignedOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`(?s)UPDATE orders\s+SET status=.+translator_id IS NOT NULL`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id=\$1`).
		WillReturnRows(orderRow(model.OrderStatusPaid, nil, nil))

	err := storage.Orders().MarkDeliveredOverride(context.Background(), "ord-1", time.Now())
	if !errors.Is(err, domainErrors.ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestUpdateAdminFieldsNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	note := "expedite"
	err := storage.Orders().UpdateAdminFields(context.Background(), "ghost", repository.AdminOrderUpdate{InternalNote: &note})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTranslatorUpdateNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE translators`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	status := model.TranslatorStatusActive
	err := storage.Translators().Update(context.Background(), 99, model.TranslatorUpdate{Status: &status})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTranslatorRoundTrip(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO translators`).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	tr := &model.Translator{
		UserID:        7,
		ContactEmail:  "t@example.com",
		LanguagePairs: []string{"en-de"},
		Status:        model.TranslatorStatusActive,
	}
	if err := storage.Translators().Create(context.Background(), tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery(`SELECT .+ FROM translators WHERE user_id=\$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{
			"user_id", "contact_email", "language_pairs", "status", "rate_per_page_cents",
			"max_pages_per_day", "can_rush", "can_notarize", "public", "created_at", "updated_at",
		}).AddRow(int64(7), "t@example.com", []string{"en-de"}, "active", int64(0), 0, false, false, false, now, now))

	got, err := storage.Translators().GetByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.TranslatorStatusActive || len(got.LanguagePairs) != 1 {
		t.Fatalf("unexpected translator %+v", got)
	}
}

func TestOrderFileAdd(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO order_files`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	f, err := storage.OrderFiles().Add(context.Background(), &model.OrderFile{
		OrderID:     "ord-1",
		FileName:    "birth-certificate.pdf",
		Path:        "orders/ord-1/source/x-birth-certificate.pdf",
		SizeBytes:   1024,
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ID != 3 {
		t.Fatalf("unexpected id %d", f.ID)
	}
}

func strPtr(s string) *string { return &s }
