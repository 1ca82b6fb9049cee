package shipments

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/shipments", h.List)
	r.Post("/shipments", h.Create)
	r.Put("/shipments", h.Update)
	r.Delete("/shipments/{id}", h.Delete)
}
