package invoices

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unchin/unchin/internal/shared"
)

var ErrMissingParams = fmt.Errorf("%w: from, to and customer_id are required", shared.ErrValidation)

// PreviewRequest carries the raw query parameters of GET /invoices.
type PreviewRequest struct {
	From         string
	To           string
	CustomerID   string
	OnlyUnclosed bool
}

// Window validates the request parameters.
func (r PreviewRequest) Window() (Window, error) {
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" || strings.TrimSpace(r.CustomerID) == "" {
		return Window{}, ErrMissingParams
	}
	from, err := shared.ParseDate(r.From)
	if err != nil {
		return Window{}, err
	}
	to, err := shared.ParseDate(r.To)
	if err != nil {
		return Window{}, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(r.CustomerID), 10, 64)
	if err != nil || id <= 0 {
		return Window{}, fmt.Errorf("%w: invalid customer_id %q", shared.ErrValidation, r.CustomerID)
	}
	return Window{From: from, To: to, CustomerID: id}, nil
}

// CloseRequest is the body of POST /invoices.
type CloseRequest struct {
	From       shared.Date `json:"from"`
	To         shared.Date `json:"to"`
	CustomerID int64       `json:"customer_id"`
}

// Window validates the request body.
func (r CloseRequest) Window() (Window, error) {
	if r.From.IsZero() || r.To.IsZero() || r.CustomerID == 0 {
		return Window{}, ErrMissingParams
	}
	if r.CustomerID < 0 {
		return Window{}, fmt.Errorf("%w: invalid customer_id %d", shared.ErrValidation, r.CustomerID)
	}
	return Window{From: r.From, To: r.To, CustomerID: r.CustomerID}, nil
}
