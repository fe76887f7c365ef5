package submission

import "github.com/go-chi/chi/v5"

// StudentRoutes registers on a router already scoped to /assignments/{id}.
func StudentRoutes(r chi.Router, h *Handler) {
	r.Post("/submit", h.Submit)
	r.Get("/submission", h.GetMine)
}

func AdminRoutes(r chi.Router, h *Handler) {
	r.Get("/assignments/{id}/stats", h.Stats)
}
