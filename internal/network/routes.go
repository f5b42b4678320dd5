package network

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes serves /api/network.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/assembly", h.Assembly)
	r.Get("/issues/{issue}", h.Issue)
	r.Get("/clusters", h.Clusters)

	return r
}
