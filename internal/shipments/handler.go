package shipments

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/unchin/unchin/internal/platform/httpx"
	"github.com/unchin/unchin/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// ParseFilter reads from, to, customer_id and status from the query string.
func ParseFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var filter ListFilter

	from, err := shared.ParseOptionalDate(q.Get("from"))
	if err != nil {
		return filter, err
	}
	to, err := shared.ParseOptionalDate(q.Get("to"))
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to

	if raw := strings.TrimSpace(q.Get("customer_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filter, fmt.Errorf("%w: invalid customer_id %q", shared.ErrValidation, raw)
		}
		filter.CustomerID = &id
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status := Status(raw)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}
	return filter, nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list shipments failed", "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in ShipmentInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.logger.Warn("create shipment failed", "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	h.logger.Info("shipment created", "id", id, "customer_id", in.CustomerID)
	httpx.JSON(w, http.StatusCreated, CreateResponse{ID: id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in ShipmentInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	if err := h.service.Update(r.Context(), in); err != nil {
		h.logger.Warn("update shipment failed", "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.OK(w)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.BadRequest(w, "invalid shipment id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Warn("delete shipment failed", "id", id, "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.OK(w)
}
