package regions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupNationalRoutes serves /api/national.
func SetupNationalRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/sido", h.SidoList)
	r.Get("/sido/{code}", h.SigunguList)
	r.Get("/sigungu/{code}", h.EmdongList)
	r.Get("/sigungu/{code}/detail", h.SigunguDetail)
	r.Get("/emdong/{code}", h.Emdong)

	return r
}

// SetupEmdongRoutes serves /api/emdong.
func SetupEmdongRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{code}/timeseries", h.Timeseries)
	r.Get("/{code}/enhanced", h.Enhanced)

	return r
}

// SetupRegionRoutes serves /api/regions.
func SetupRegionRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Regions)
	r.Get("/{code}", h.Region)

	return r
}
