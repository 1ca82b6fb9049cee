// Package dispatch arranges one day's shipments into vehicle lanes.
package dispatch

import (
	"sort"
	"strings"

	"github.com/unchin/unchin/internal/invoices"
	"github.com/unchin/unchin/internal/shared"
	"github.com/unchin/unchin/internal/shipments"
)

// UndecidedVehicle labels the lane of shipments without a vehicle number.
const UndecidedVehicle = "未定"

// Lane holds one vehicle's shipments in id order.
type Lane struct {
	VehicleNo string               `json:"vehicle_no"`
	Rows      []shipments.Shipment `json:"rows"`
	Sum       invoices.Summary     `json:"sum"`
}

// Board is the dispatch view of a day.
type Board struct {
	Date       shared.Date          `json:"date"`
	Total      invoices.Summary     `json:"total"`
	Unassigned []shipments.Shipment `json:"unassigned"`
	Lanes      []Lane               `json:"lanes"`
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Build groups rows by trimmed vehicle number. Lanes keep the order in which
// their vehicle first appears in rows; rows with neither vehicle nor driver
// are also listed as unassigned.
func Build(date shared.Date, rows []shipments.Shipment) Board {
	board := Board{
		Date:       date,
		Total:      invoices.Summarize(rows),
		Unassigned: make([]shipments.Shipment, 0),
		Lanes:      make([]Lane, 0),
	}

	index := make(map[string]int)
	for _, row := range rows {
		if blank(row.VehicleNo) && blank(row.DriverName) {
			board.Unassigned = append(board.Unassigned, row)
		}
		key := UndecidedVehicle
		if !blank(row.VehicleNo) {
			key = strings.TrimSpace(*row.VehicleNo)
		}
		i, ok := index[key]
		if !ok {
			i = len(board.Lanes)
			index[key] = i
			board.Lanes = append(board.Lanes, Lane{VehicleNo: key})
		}
		board.Lanes[i].Rows = append(board.Lanes[i].Rows, row)
	}

	for i := range board.Lanes {
		lane := &board.Lanes[i]
		sort.SliceStable(lane.Rows, func(a, b int) bool { return lane.Rows[a].ID < lane.Rows[b].ID })
		lane.Sum = invoices.Summarize(lane.Rows)
	}
	return board
}
