package shipments

import (
	"github.com/unchin/unchin/internal/shared"
)

// ShipmentInput is the body of POST and PUT /shipments. PUT replaces every
// field; absent amounts become 0 and an absent status keeps the stored one.
type ShipmentInput struct {
	ID              *int64      `json:"id,omitempty" validate:"omitempty,gt=0"`
	Date            shared.Date `json:"date"`
	CustomerID      int64       `json:"customer_id" validate:"gte=0"`
	Origin          *string     `json:"origin,omitempty" validate:"omitempty,max=200"`
	Destination     *string     `json:"destination,omitempty" validate:"omitempty,max=200"`
	ItemName        *string     `json:"item_name,omitempty" validate:"omitempty,max=200"`
	VehicleNo       *string     `json:"vehicle_no,omitempty" validate:"omitempty,max=50"`
	DriverName      *string     `json:"driver_name,omitempty" validate:"omitempty,max=100"`
	PartnerName     *string     `json:"partner_name,omitempty" validate:"omitempty,max=200"`
	FreightAmount   *int64      `json:"freight_amount,omitempty" validate:"omitempty,gte=0"`
	TollAmount      *int64      `json:"toll_amount,omitempty" validate:"omitempty,gte=0"`
	TaxExemptAmount *int64      `json:"tax_exempt_amount,omitempty" validate:"omitempty,gte=0"`
	Note            *string     `json:"note,omitempty"`
	Status          *Status     `json:"status,omitempty" validate:"omitempty,oneof=unclosed closed"`
}

// CreateResponse is returned by POST /shipments.
type CreateResponse struct {
	ID int64 `json:"id"`
}

func amountOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// toShipment builds the stored record. Status is left empty when the input
// omits it so the caller decides the default.
func (in ShipmentInput) toShipment() Shipment {
	s := Shipment{
		Date:            in.Date,
		CustomerID:      in.CustomerID,
		Origin:          shared.TrimToNil(in.Origin),
		Destination:     shared.TrimToNil(in.Destination),
		ItemName:        shared.TrimToNil(in.ItemName),
		VehicleNo:       shared.TrimToNil(in.VehicleNo),
		DriverName:      shared.TrimToNil(in.DriverName),
		PartnerName:     shared.TrimToNil(in.PartnerName),
		FreightAmount:   amountOrZero(in.FreightAmount),
		TollAmount:      amountOrZero(in.TollAmount),
		TaxExemptAmount: amountOrZero(in.TaxExemptAmount),
		Note:            shared.TrimToNil(in.Note),
	}
	if in.ID != nil {
		s.ID = *in.ID
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
	return s
}
