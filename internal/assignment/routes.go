package assignment

import "github.com/go-chi/chi/v5"

// StudentRoutes registers on a router already scoped to /assignments/{id}.
func StudentRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.GetAssignment)
}

func AdminRoutes(r chi.Router, h *Handler) {
	r.Put("/questions/{id}/correct-option", h.SetCorrectOption)
	r.Post("/assignments/{id}/publish", h.Publish)
}
