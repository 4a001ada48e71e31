package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type translatorRepository struct {
	storage *Storage
}

type orderFileRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Translators() repository.TranslatorRepository {
	return &translatorRepository{storage: s}
}

func (s *Storage) OrderFiles() repository.OrderFileRepository {
	return &orderFileRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS translators (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            contact_email TEXT NOT NULL DEFAULT '',
            language_pairs TEXT[] NOT NULL DEFAULT '{}',
            status TEXT NOT NULL DEFAULT 'pending',
            rate_per_page_cents BIGINT NOT NULL DEFAULT 0,
            max_pages_per_day INT NOT NULL DEFAULT 0,
            can_rush BOOLEAN NOT NULL DEFAULT FALSE,
            can_notarize BOOLEAN NOT NULL DEFAULT FALSE,
            public BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES users(id),
            translator_id BIGINT REFERENCES users(id),
            source_lang TEXT NOT NULL,
            target_lang TEXT NOT NULL,
            document_type TEXT NOT NULL,
            urgency TEXT NOT NULL,
            pages INT NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            price_cents BIGINT,
            checkout_session_id TEXT UNIQUE,
            payment_confirmation_id TEXT,
            status TEXT NOT NULL,
            translated_file_path TEXT,
            delivered_at TIMESTAMPTZ,
            first_viewed_at TIMESTAMPTZ,
            needs_revision BOOLEAN NOT NULL DEFAULT FALSE,
            revision_message TEXT,
            revision_requested_at TIMESTAMPTZ,
            internal_note TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_files (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            file_name TEXT NOT NULL,
            path TEXT NOT NULL,
            size_bytes BIGINT NOT NULL,
            content_type TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_translator ON orders(translator_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_order_files_order ON order_files(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, string(role)).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Role, err = model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_id, translator_id, source_lang, target_lang, document_type, urgency,
            pages, notes, price_cents, checkout_session_id, payment_confirmation_id, status,
            translated_file_path, delivered_at, first_viewed_at, needs_revision, revision_message,
            revision_requested_at, internal_note, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, customer_id, source_lang, target_lang, document_type, urgency, pages, notes, price_cents, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		order.ID, order.CustomerID, order.SourceLang, order.TargetLang,
		string(order.DocumentType), string(order.Urgency), order.Pages, order.Notes,
		order.PriceCents, string(order.Status),
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetByCheckoutSession(ctx context.Context, sessionID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE checkout_session_id=$1`
	return r.scanOrder(r.storage.pool.QueryRow(ctx, query, sessionID))
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, customerID)
}

func (r *orderRepository) ListByTranslator(ctx context.Context, translatorID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE translator_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, translatorID)
}

func (r *orderRepository) List(ctx context.Context, status *model.OrderStatus) ([]model.Order, error) {
	if status != nil {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC`
		return r.listOrders(ctx, query, string(*status))
	}
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) InitiateCheckout(ctx context.Context, orderID string, priceCents int64, sessionID string) error {
	const query = `UPDATE orders
                   SET status=$1, price_cents=$2, checkout_session_id=$3, updated_at=NOW()
                   WHERE id=$4 AND status=$5`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusCheckoutInitiated), priceCents, sessionID,
		orderID, string(model.OrderStatusPendingReview))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionInitiateCheckout, nil)
	}
	return nil
}

func (r *orderRepository) ConfirmPayment(ctx context.Context, sessionID, confirmationID string) (*model.Order, bool, error) {
	query := `UPDATE orders
              SET status=$1, payment_confirmation_id=$2, updated_at=NOW()
              WHERE checkout_session_id=$3 AND status=$4
              RETURNING ` + orderColumns
	order, err := r.scanOrder(r.storage.pool.QueryRow(ctx, query,
		string(model.OrderStatusPaid), confirmationID,
		sessionID, string(model.OrderStatusCheckoutInitiated)))
	if err == nil {
		return order, true, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, false, err
	}

	// Either the session is unknown or the event is a replay. Re-read to
	// distinguish; replays of an already applied confirmation are no-ops.
	existing, getErr := r.GetByCheckoutSession(ctx, sessionID)
	if getErr != nil {
		return nil, false, getErr
	}
	if existing.PaymentConfirmationID != nil && *existing.PaymentConfirmationID == confirmationID {
		return existing, false, nil
	}
	return nil, false, &domainErrors.PreconditionError{
		Current:  string(existing.Status),
		Required: []string{string(model.OrderStatusCheckoutInitiated)},
	}
}

func (r *orderRepository) Assign(ctx context.Context, orderID string, translatorID int64) error {
	const query = `UPDATE orders
                   SET status=$1, translator_id=$2, updated_at=NOW()
                   WHERE id=$3 AND status=$4 AND translator_id IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusAssigned), translatorID,
		orderID, string(model.OrderStatusPaid))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionAssign, nil)
	}
	return nil
}

func (r *orderRepository) Reassign(ctx context.Context, orderID string, translatorID int64) error {
	// Single statement swap: no transient unassigned state is ever visible.
	const query = `UPDATE orders
                   SET translator_id=$1, status=$2, updated_at=NOW()
                   WHERE id=$3 AND status IN ($4, $5) AND translator_id IS NOT NULL`
	tag, err := r.storage.pool.Exec(ctx, query,
		translatorID, string(model.OrderStatusAssigned),
		orderID, string(model.OrderStatusAssigned), string(model.OrderStatusInProgress))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionReassign, nil)
	}
	return nil
}

func (r *orderRepository) Claim(ctx context.Context, orderID string, translatorID int64) error {
	const query = `UPDATE orders
                   SET status=$1, translator_id=$2, updated_at=NOW()
                   WHERE id=$3 AND status=$4 AND translator_id IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusInProgress), translatorID,
		orderID, string(model.OrderStatusPaid))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionClaim, nil)
	}
	return nil
}

func (r *orderRepository) StartWork(ctx context.Context, orderID string, translatorID int64) error {
	const query = `UPDATE orders
                   SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status=$3 AND translator_id=$4`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusInProgress),
		orderID, string(model.OrderStatusAssigned), translatorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionStartWork, &translatorID)
	}
	return nil
}

func (r *orderRepository) SaveDelivery(ctx context.Context, orderID string, translatorID int64, path string, deliveredAt time.Time) error {
	const query = `UPDATE orders
                   SET status=$1, translated_file_path=$2, delivered_at=$3,
                       needs_revision=FALSE, revision_message=NULL, revision_requested_at=NULL,
                       updated_at=NOW()
                   WHERE id=$4 AND status IN ($5, $6) AND translator_id=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusDelivered), path, deliveredAt,
		orderID, string(model.OrderStatusInProgress), string(model.OrderStatusRevisionRequested), translatorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionDeliver, &translatorID)
	}
	return nil
}

func (r *orderRepository) RequestRevision(ctx context.Context, orderID string, customerID int64, message string, requestedAt time.Time) error {
	const query = `UPDATE orders
                   SET status=$1, needs_revision=TRUE, revision_message=$2, revision_requested_at=$3, updated_at=NOW()
                   WHERE id=$4 AND status=$5 AND customer_id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusRevisionRequested), message, requestedAt,
		orderID, string(model.OrderStatusDelivered), customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.ownershipFailure(ctx, orderID, model.ActionRequestRevision, customerID)
	}
	return nil
}

func (r *orderRepository) ClearRevision(ctx context.Context, orderID string) error {
	const query = `UPDATE orders
                   SET status=$1, needs_revision=FALSE, revision_message=NULL, revision_requested_at=NULL, updated_at=NOW()
                   WHERE id=$2 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusDelivered),
		orderID, string(model.OrderStatusRevisionRequested))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionClearRevision, nil)
	}
	return nil
}

func (r *orderRepository) Complete(ctx context.Context, orderID string, force bool) error {
	if force {
		// Completed orders always carry a translator, so even the force
		// path refuses rows that never left the pre-assignment phase.
		const query = `UPDATE orders SET status=$1, updated_at=NOW()
                       WHERE id=$2 AND status NOT IN ($3, $4) AND translator_id IS NOT NULL`
		tag, err := r.storage.pool.Exec(ctx, query,
			string(model.OrderStatusCompleted),
			orderID, string(model.OrderStatusCompleted), string(model.OrderStatusCancelled))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.transitionFailure(ctx, orderID, model.ActionComplete, nil)
		}
		return nil
	}

	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status IN ($3, $4)`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusCompleted),
		orderID, string(model.OrderStatusInProgress), string(model.OrderStatusDelivered))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionComplete, nil)
	}
	return nil
}

func (r *orderRepository) MarkDeliveredOverride(ctx context.Context, orderID string, deliveredAt time.Time) error {
	const query = `UPDATE orders
                   SET status=$1, delivered_at=$2, needs_revision=FALSE, revision_message=NULL, revision_requested_at=NULL, updated_at=NOW()
                   WHERE id=$3 AND status IN ($4, $5, $6) AND translator_id IS NOT NULL`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusDelivered), deliveredAt,
		orderID,
		string(model.OrderStatusAssigned),
		string(model.OrderStatusInProgress), string(model.OrderStatusRevisionRequested))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.transitionFailure(ctx, orderID, model.ActionMarkDelivered, nil)
	}
	return nil
}

func (r *orderRepository) Cancel(ctx context.Context, orderID string, customerID int64) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status IN ($3, $4) AND customer_id=$5`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.OrderStatusCancelled),
		orderID, string(model.OrderStatusPendingReview), string(model.OrderStatusCheckoutInitiated), customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.ownershipFailure(ctx, orderID, model.ActionCancel, customerID)
	}
	return nil
}

func (r *orderRepository) SetFirstViewed(ctx context.Context, orderID string, viewedAt time.Time) error {
	// Set at most once; later views are intentional no-ops.
	const query = `UPDATE orders SET first_viewed_at=$1, updated_at=NOW()
                   WHERE id=$2 AND first_viewed_at IS NULL`
	_, err := r.storage.pool.Exec(ctx, query, viewedAt, orderID)
	return err
}

func (r *orderRepository) UpdateAdminFields(ctx context.Context, orderID string, upd repository.AdminOrderUpdate) error {
	const query = `UPDATE orders
                   SET internal_note = COALESCE($1, internal_note),
                       price_cents = COALESCE($2, price_cents),
                       updated_at = NOW()
                   WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, upd.InternalNote, upd.PriceCents, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// transitionFailure classifies a conditional update that touched no rows:
// missing order, wrong status, wrong translator, or a lost race on the
// translator slot.
func (r *orderRepository) transitionFailure(ctx context.Context, orderID string, action model.Action, translatorID *int64) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	required := model.TransitionSources(action)
	for _, s := range required {
		if order.Status != s {
			continue
		}
		// Status was legal, so a secondary guard failed: either the caller
		// is not the bound translator, or another writer won the slot.
		if translatorID != nil && (order.TranslatorID == nil || *order.TranslatorID != *translatorID) {
			return domainErrors.ErrUnauthorized
		}
		return domainErrors.ErrConflict
	}
	if action == model.ActionComplete && !model.Terminal(order.Status) {
		// force-complete accepts any non-terminal status once a translator
		// is bound; a nil translator means the order never left the
		// pre-assignment phase.
		if order.TranslatorID == nil {
			return &domainErrors.PreconditionError{
				Current: string(order.Status),
				Required: orderStatusStrings([]model.OrderStatus{
					model.OrderStatusAssigned, model.OrderStatusInProgress,
					model.OrderStatusDelivered, model.OrderStatusRevisionRequested,
				}),
			}
		}
		return domainErrors.ErrConflict
	}
	return &domainErrors.PreconditionError{Current: string(order.Status), Required: orderStatusStrings(required)}
}

// ownershipFailure is transitionFailure for customer-guarded updates.
func (r *orderRepository) ownershipFailure(ctx context.Context, orderID string, action model.Action, customerID int64) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return domainErrors.ErrUnauthorized
	}
	required := model.TransitionSources(action)
	for _, s := range required {
		if order.Status == s {
			return domainErrors.ErrConflict
		}
	}
	return &domainErrors.PreconditionError{Current: string(order.Status), Required: orderStatusStrings(required)}
}

func (r *orderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var docType, urgency, status string
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.TranslatorID, &o.SourceLang, &o.TargetLang, &docType, &urgency,
		&o.Pages, &o.Notes, &o.PriceCents, &o.CheckoutSessionID, &o.PaymentConfirmationID, &status,
		&o.TranslatedFilePath, &o.DeliveredAt, &o.FirstViewedAt, &o.NeedsRevision, &o.RevisionMessage,
		&o.RevisionRequestedAt, &o.InternalNote, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.DocumentType = model.DocumentType(docType)
	o.Urgency = model.Urgency(urgency)
	o.Status = model.OrderStatus(status)
	return &o, nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		var docType, urgency, status string
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.TranslatorID, &o.SourceLang, &o.TargetLang, &docType, &urgency,
			&o.Pages, &o.Notes, &o.PriceCents, &o.CheckoutSessionID, &o.PaymentConfirmationID, &status,
			&o.TranslatedFilePath, &o.DeliveredAt, &o.FirstViewedAt, &o.NeedsRevision, &o.RevisionMessage,
			&o.RevisionRequestedAt, &o.InternalNote, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		o.DocumentType = model.DocumentType(docType)
		o.Urgency = model.Urgency(urgency)
		o.Status = model.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func orderStatusStrings(statuses []model.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// --- TranslatorRepository implementation ---

const translatorColumns = `user_id, contact_email, language_pairs, status, rate_per_page_cents,
            max_pages_per_day, can_rush, can_notarize, public, created_at, updated_at`

func (r *translatorRepository) Create(ctx context.Context, t *model.Translator) error {
	const query = `INSERT INTO translators (user_id, contact_email, language_pairs, status, rate_per_page_cents, max_pages_per_day, can_rush, can_notarize, public)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		t.UserID, t.ContactEmail, t.LanguagePairs, string(t.Status),
		t.RatePerPageCents, t.MaxPagesPerDay, t.CanRush, t.CanNotarize, t.Public,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *translatorRepository) GetByUserID(ctx context.Context, userID int64) (*model.Translator, error) {
	query := `SELECT ` + translatorColumns + ` FROM translators WHERE user_id=$1`
	var t model.Translator
	var status string
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(
		&t.UserID, &t.ContactEmail, &t.LanguagePairs, &status, &t.RatePerPageCents,
		&t.MaxPagesPerDay, &t.CanRush, &t.CanNotarize, &t.Public, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	t.Status = model.TranslatorStatus(status)
	return &t, nil
}

func (r *translatorRepository) List(ctx context.Context, publicOnly bool) ([]model.Translator, error) {
	query := `SELECT ` + translatorColumns + ` FROM translators ORDER BY created_at`
	args := []any{}
	if publicOnly {
		query = `SELECT ` + translatorColumns + ` FROM translators WHERE status=$1 AND public ORDER BY created_at`
		args = append(args, string(model.TranslatorStatusActive))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Translator
	for rows.Next() {
		var t model.Translator
		var status string
		if err := rows.Scan(
			&t.UserID, &t.ContactEmail, &t.LanguagePairs, &status, &t.RatePerPageCents,
			&t.MaxPagesPerDay, &t.CanRush, &t.CanNotarize, &t.Public, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Status = model.TranslatorStatus(status)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *translatorRepository) Update(ctx context.Context, userID int64, upd model.TranslatorUpdate) error {
	var statusStr *string
	if upd.Status != nil {
		s := string(*upd.Status)
		statusStr = &s
	}

	const query = `UPDATE translators
                   SET contact_email = COALESCE($1, contact_email),
                       language_pairs = COALESCE($2, language_pairs),
                       status = COALESCE($3, status),
                       rate_per_page_cents = COALESCE($4, rate_per_page_cents),
                       max_pages_per_day = COALESCE($5, max_pages_per_day),
                       can_rush = COALESCE($6, can_rush),
                       can_notarize = COALESCE($7, can_notarize),
                       public = COALESCE($8, public),
                       updated_at = NOW()
                   WHERE user_id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		upd.ContactEmail, upd.LanguagePairs, statusStr, upd.RatePerPageCents,
		upd.MaxPagesPerDay, upd.CanRush, upd.CanNotarize, upd.Public, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderFileRepository implementation ---

func (r *orderFileRepository) Add(ctx context.Context, f *model.OrderFile) (*model.OrderFile, error) {
	const query = `INSERT INTO order_files (order_id, file_name, path, size_bytes, content_type)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		f.OrderID, f.FileName, f.Path, f.SizeBytes, f.ContentType,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *orderFileRepository) ListByOrder(ctx context.Context, orderID string) ([]model.OrderFile, error) {
	const query = `SELECT id, order_id, file_name, path, size_bytes, content_type, created_at
                   FROM order_files WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderFile
	for rows.Next() {
		var f model.OrderFile
		if err := rows.Scan(&f.ID, &f.OrderID, &f.FileName, &f.Path, &f.SizeBytes, &f.ContentType, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
