package shipments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unchin/unchin/internal/platform/db"
	"github.com/unchin/unchin/internal/shared"
)

var (
	ErrDateRequired     = fmt.Errorf("%w: date is required", shared.ErrValidation)
	ErrCustomerRequired = fmt.Errorf("%w: customer_id is required", shared.ErrValidation)
	ErrIDRequired       = fmt.Errorf("%w: id is required", shared.ErrValidation)
	ErrCustomerNotFound = fmt.Errorf("%w: customer does not exist", shared.ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: amounts must be non-negative", shared.ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: status must be unclosed or closed", shared.ErrValidation)
	ErrShipmentClosed   = fmt.Errorf("%w: shipment is closed", shared.ErrValidation)
	ErrShipmentNotFound = fmt.Errorf("shipment %w", shared.ErrNotFound)
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Shipment, error)
	Get(ctx context.Context, id int64) (*Shipment, error)
	Create(ctx context.Context, s Shipment) (int64, error)
	// UpdateUnclosed rewrites an unclosed row. An empty Status keeps the
	// stored one. Returns the number of rows changed.
	UpdateUnclosed(ctx context.Context, s Shipment) (int64, error)
	// DeleteUnclosed removes an unclosed row. Returns the number of rows removed.
	DeleteUnclosed(ctx context.Context, id int64) (int64, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

// NewTxRepository binds the repository to an open transaction.
func NewTxRepository(tx pgx.Tx) Repository {
	return &repository{db: tx}
}

// SelectColumns lists shipment columns joined with the customer name.
// Queries using it must alias shipments as s and customers as c.
const SelectColumns = `s.id, s.date, s.customer_id, c.name, s.origin, s.destination, s.item_name,
	s.vehicle_no, s.driver_name, s.partner_name, s.freight_amount, s.toll_amount,
	s.tax_exempt_amount, s.note, s.status`

// ScanRow decodes a row selected with SelectColumns.
func ScanRow(row pgx.Row) (Shipment, error) {
	var s Shipment
	err := row.Scan(
		&s.ID, &s.Date, &s.CustomerID, &s.CustomerName, &s.Origin, &s.Destination, &s.ItemName,
		&s.VehicleNo, &s.DriverName, &s.PartnerName, &s.FreightAmount, &s.TollAmount,
		&s.TaxExemptAmount, &s.Note, &s.Status,
	)
	return s, err
}

// BuildWhere renders filter as a WHERE clause with $n placeholders.
func BuildWhere(filter ListFilter) (string, []any) {
	var conditions []string
	var args []any
	argPos := 1

	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}
	if filter.CustomerID != nil {
		conditions = append(conditions, fmt.Sprintf("s.customer_id = $%d", argPos))
		args = append(args, *filter.CustomerID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argPos))
		args = append(args, string(*filter.Status))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func orderClause(order Order) string {
	if order == OldestFirst {
		return " ORDER BY s.date ASC, s.id ASC"
	}
	return " ORDER BY s.date DESC, s.id DESC"
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Shipment, error) {
	where, args := BuildWhere(filter)
	query := `SELECT ` + SelectColumns + `
		FROM shipments s
		LEFT JOIN customers c ON c.id = s.customer_id` + where + orderClause(filter.Order)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Shipment, 0)
	for rows.Next() {
		s, err := ScanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Shipment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+SelectColumns+`
		FROM shipments s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1`, id)
	s, err := ScanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s Shipment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO shipments (
			date, customer_id, origin, destination, item_name, vehicle_no, driver_name,
			partner_name, freight_amount, toll_amount, tax_exempt_amount, note, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		s.Date, s.CustomerID, s.Origin, s.Destination, s.ItemName, s.VehicleNo, s.DriverName,
		s.PartnerName, s.FreightAmount, s.TollAmount, s.TaxExemptAmount, s.Note, string(s.Status),
	).Scan(&id)
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

func (r *repository) UpdateUnclosed(ctx context.Context, s Shipment) (int64, error) {
	var status *string
	if s.Status != "" {
		v := string(s.Status)
		status = &v
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE shipments SET
			date = $2, customer_id = $3, origin = $4, destination = $5, item_name = $6,
			vehicle_no = $7, driver_name = $8, partner_name = $9, freight_amount = $10,
			toll_amount = $11, tax_exempt_amount = $12, note = $13,
			status = COALESCE($14, status)
		WHERE id = $1 AND status = 'unclosed'`,
		s.ID, s.Date, s.CustomerID, s.Origin, s.Destination, s.ItemName,
		s.VehicleNo, s.DriverName, s.PartnerName, s.FreightAmount,
		s.TollAmount, s.TaxExemptAmount, s.Note, status,
	)
	if err != nil {
		return 0, classify(err)
	}
	return tag.RowsAffected(), nil
}

func (r *repository) DeleteUnclosed(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shipments WHERE id = $1 AND status = 'unclosed'`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func classify(err error) error {
	switch db.PgCode(err) {
	case shared.PgForeignKeyViolation:
		return ErrCustomerNotFound
	case shared.PgCheckViolation:
		return fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	return err
}
