package shipments

import (
	"github.com/unchin/unchin/internal/shared"
)

// ============================================================================
// SHIPMENT STATUS
// ============================================================================

// Status is the billing state of a shipment line.
type Status string

const (
	StatusUnclosed Status = "unclosed" // Not yet invoiced, editable
	StatusClosed   Status = "closed"   // Included in a settled invoice, immutable
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusUnclosed, StatusClosed:
		return true
	default:
		return false
	}
}

// CanEdit checks if a shipment can be updated or deleted in this status
func (s Status) CanEdit() bool {
	return s == StatusUnclosed
}

// CanTransitionTo reports whether moving from s to target is allowed.
// The only transition is unclosed -> closed.
func (s Status) CanTransitionTo(target Status) bool {
	return s == target || (s == StatusUnclosed && target == StatusClosed)
}

// ============================================================================
// SHIPMENT ENTITY
// ============================================================================

// Shipment is one billable line: a delivery on a date for a customer.
type Shipment struct {
	ID              int64       `json:"id" db:"id"`
	Date            shared.Date `json:"date" db:"date"`
	CustomerID      int64       `json:"customer_id" db:"customer_id"`
	CustomerName    *string     `json:"customer_name" db:"customer_name"`
	Origin          *string     `json:"origin" db:"origin"`
	Destination     *string     `json:"destination" db:"destination"`
	ItemName        *string     `json:"item_name" db:"item_name"`
	VehicleNo       *string     `json:"vehicle_no" db:"vehicle_no"`
	DriverName      *string     `json:"driver_name" db:"driver_name"`
	PartnerName     *string     `json:"partner_name" db:"partner_name"`
	FreightAmount   int64       `json:"freight_amount" db:"freight_amount"`
	TollAmount      int64       `json:"toll_amount" db:"toll_amount"`
	TaxExemptAmount int64       `json:"tax_exempt_amount" db:"tax_exempt_amount"`
	Note            *string     `json:"note" db:"note"`
	Status          Status      `json:"status" db:"status"`
}

// Total is the billable value of the line.
func (s Shipment) Total() int64 {
	return s.FreightAmount + s.TollAmount + s.TaxExemptAmount
}

// ============================================================================
// LISTING
// ============================================================================

// Order selects the listing order.
type Order int

const (
	// NewestFirst orders by date DESC, id DESC.
	NewestFirst Order = iota
	// OldestFirst orders by date ASC, id ASC.
	OldestFirst
)

// ListFilter narrows List. Nil fields are not applied; date bounds are inclusive.
type ListFilter struct {
	From       *shared.Date
	To         *shared.Date
	CustomerID *int64
	Status     *Status
	Order      Order
}

// Matches applies the filter to a single shipment.
func (f ListFilter) Matches(s Shipment) bool {
	if f.From != nil && s.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && f.To.Before(s.Date) {
		return false
	}
	if f.CustomerID != nil && s.CustomerID != *f.CustomerID {
		return false
	}
	if f.Status != nil && s.Status != *f.Status {
		return false
	}
	return true
}
