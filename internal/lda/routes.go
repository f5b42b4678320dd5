package lda

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes serves /api/lda.
func SetupRoutes(p Provider) http.Handler {
	log.Printf("[lda] using %s provider", p.Name())
	h := &Handler{Provider: p}
	r := chi.NewRouter()

	r.Get("/district/{gu}", h.District)
	r.Get("/assembly/{name}", h.Assembly)
	r.Get("/local/{name}", h.Local)

	return r
}
