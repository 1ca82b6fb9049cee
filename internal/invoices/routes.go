package invoices

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.Preview)
		r.Post("/", h.Close)
		r.Get("/export", h.Export)
		r.Get("/settlements", h.Settlements)
	})
}
