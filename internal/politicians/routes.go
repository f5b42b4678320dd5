package politicians

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes serves /api/politicians.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/emdong/{code}", h.RosterByEmdong)
	r.Get("/assembly", h.Assembly)

	return r
}
