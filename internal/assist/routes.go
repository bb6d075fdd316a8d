package assist

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.HandleRoot)
	r.Get("/debug", h.HandleDebug)
	r.Post("/ask", h.HandleAsk)
}
