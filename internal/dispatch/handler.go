package dispatch

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

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
	r.Get("/dispatch", h.Board)
}

func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := ParseBoardRequest(q.Get("date"), q.Get("customer_id"), q.Get("onlyUnclosed"))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	board, err := h.service.Board(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, board)
}
