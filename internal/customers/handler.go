package customers

import (
	"log/slog"
	"net/http"

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := ListCustomersRequest{
		Order:  OrderCreated,
		Search: r.URL.Query().Get("q"),
	}
	if ListOrder(r.URL.Query().Get("order")) == OrderName {
		req.Order = OrderName
	}

	customers, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list customers failed", "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customers)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	customer, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Warn("create customer failed", "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	h.logger.Info("customer created", "id", customer.ID, "code", shared.Deref(customer.Code))
	httpx.JSON(w, http.StatusCreated, customer)
}
