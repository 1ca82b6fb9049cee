package invoices

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unchin/unchin/internal/platform/db"
	"github.com/unchin/unchin/internal/shipments"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	// CloseUnclosed marks every unclosed shipment in the window closed and
	// returns the summary of the rows it changed.
	CloseUnclosed(ctx context.Context, w Window) (Summary, error)
	InsertSettlement(ctx context.Context, s Settlement) (Settlement, error)
	ListSettlements(ctx context.Context, customerID *int64) ([]Settlement, error)
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

// WithTx uses ReadCommitted so a concurrent close of the same window
// re-checks status after the first commits and closes nothing.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTxOptions(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

func (r *repository) CloseUnclosed(ctx context.Context, w Window) (Summary, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE shipments SET status = 'closed'
		WHERE date >= $1 AND date <= $2 AND customer_id = $3 AND status = 'unclosed'
		RETURNING freight_amount, toll_amount, tax_exempt_amount`,
		w.From, w.To, w.CustomerID)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	var sum Summary
	for rows.Next() {
		var row shipments.Shipment
		if err := rows.Scan(&row.FreightAmount, &row.TollAmount, &row.TaxExemptAmount); err != nil {
			return Summary{}, err
		}
		sum.Add(row)
	}
	return sum, rows.Err()
}

func (r *repository) InsertSettlement(ctx context.Context, s Settlement) (Settlement, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO invoice_settlements (id, customer_id, date_from, date_to, closed_count, freight, toll, exempt, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		s.ID, s.CustomerID, s.From, s.To, s.ClosedCount, s.Freight, s.Toll, s.Exempt, s.Total,
	).Scan(&s.CreatedAt)
	if err != nil {
		return Settlement{}, fmt.Errorf("insert settlement: %w", err)
	}
	return s, nil
}

func (r *repository) ListSettlements(ctx context.Context, customerID *int64) ([]Settlement, error) {
	query := `
		SELECT st.id, st.customer_id, c.name, st.date_from, st.date_to, st.closed_count,
			st.freight, st.toll, st.exempt, st.total, st.created_at
		FROM invoice_settlements st
		LEFT JOIN customers c ON c.id = st.customer_id`
	var args []any
	if customerID != nil {
		query += ` WHERE st.customer_id = $1`
		args = append(args, *customerID)
	}
	query += ` ORDER BY st.created_at DESC, st.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Settlement, 0)
	for rows.Next() {
		var s Settlement
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.CustomerName, &s.From, &s.To, &s.ClosedCount,
			&s.Freight, &s.Toll, &s.Exempt, &s.Total, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
