package reports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unchin/unchin/internal/export"
	"github.com/unchin/unchin/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/reports/customer-summary", h.CustomerSummary)
	r.Get("/reports/customer-summary/export", h.ExportCustomerSummary)
}

func summaryRequest(r *http.Request) (SummaryRequest, error) {
	q := r.URL.Query()
	return ParseSummaryRequest(q.Get("from"), q.Get("to"), q.Get("onlyUnclosed"))
}

func (h *Handler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	req, err := summaryRequest(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	summary, err := h.service.CustomerSummary(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) ExportCustomerSummary(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	req, err := summaryRequest(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	summary, err := h.service.CustomerSummary(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.Attachment(w, format.ContentType(), format.Filename(req.Filename()))
	if err := export.Write(w, format, Table(*summary)); err != nil {
		h.logger.Error("customer summary export failed", "error", err)
	}
}
