package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unchin/unchin/internal/platform/db"
	"github.com/unchin/unchin/internal/shared"
)

var (
	ErrNameRequired  = fmt.Errorf("%w: name is required", shared.ErrValidation)
	ErrDuplicateCode = fmt.Errorf("%w: customer code already exists", shared.ErrValidation)
)

// codeLockKey is the advisory lock id serialising generated customer codes.
const codeLockKey int64 = 0x756e6368696e01

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	List(ctx context.Context, order ListOrder) ([]Customer, error)
	LockCodes(ctx context.Context) error
	RecentCodes(ctx context.Context, limit int) ([]string, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

// WithTx runs fn in a ReadCommitted transaction so reads issued after
// LockCodes see rows committed by the previous lock holder.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTxOptions(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const customerColumns = `id, code, name, kana, phone, email, postal, address1, address2, note, is_active, created_at`

func (r *repository) List(ctx context.Context, order ListOrder) ([]Customer, error) {
	orderBy := "created_at DESC, id DESC"
	if order == OrderName {
		orderBy = "name ASC, id ASC"
	}
	rows, err := r.db.Query(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY "+orderBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		var c Customer
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Kana, &c.Phone, &c.Email, &c.Postal,
			&c.Address1, &c.Address2, &c.Note, &c.IsActive, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *repository) LockCodes(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", codeLockKey)
	return err
}

func (r *repository) RecentCodes(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT code FROM customers
		WHERE code IS NOT NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *repository) Create(ctx context.Context, c Customer) (Customer, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO customers (code, name, kana, phone, email, postal, address1, address2, note, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		c.Code, c.Name, c.Kana, c.Phone, c.Email, c.Postal, c.Address1, c.Address2, c.Note, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if db.IsPgCode(err, shared.PgUniqueViolation) {
			return Customer{}, ErrDuplicateCode
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, fmt.Errorf("insert customer: no row returned")
		}
		return Customer{}, err
	}
	return c, nil
}
