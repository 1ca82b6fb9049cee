package invoices

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/unchin/unchin/internal/export"
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

func previewRequest(r *http.Request) PreviewRequest {
	q := r.URL.Query()
	return PreviewRequest{
		From:         q.Get("from"),
		To:           q.Get("to"),
		CustomerID:   q.Get("customer_id"),
		OnlyUnclosed: shared.ParseFlag(q.Get("onlyUnclosed")),
	}
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	preview, err := h.service.Preview(r.Context(), previewRequest(r))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, preview)
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	var req CloseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	result, err := h.service.Close(r.Context(), req)
	if err != nil {
		h.logger.Warn("invoice close failed", "customer_id", req.CustomerID, "error", err)
		httpx.RespondError(w, h.logger, err)
		return
	}
	h.logger.Info("invoice closed",
		"customer_id", req.CustomerID,
		"from", req.From.String(),
		"to", req.To.String(),
		"closed_count", result.ClosedCount,
	)
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	req := previewRequest(r)
	window, err := req.Window()
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	preview, err := h.service.Preview(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.Attachment(w, format.ContentType(), format.Filename(Filename(window)))
	if err := export.Write(w, format, Table(*preview)); err != nil {
		h.logger.Error("invoice export failed", "error", err)
	}
}

func (h *Handler) Settlements(w http.ResponseWriter, r *http.Request) {
	var customerID *int64
	if raw := strings.TrimSpace(r.URL.Query().Get("customer_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httpx.RespondError(w, h.logger, fmt.Errorf("%w: invalid customer_id %q", shared.ErrValidation, raw))
			return
		}
		customerID = &id
	}

	list, err := h.service.Settlements(r.Context(), customerID)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}
