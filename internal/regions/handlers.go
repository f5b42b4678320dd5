package regions

import (
	"net/http"
	"strings"
	"time"

	"github.com/EmpoweredVote/insightforge/internal/utils"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the region views over HTTP.
type Handler struct {
	Rollups  *RollupCache
	National *National
	Resolver *Resolver
	Seoul    *Seoul
}

func (h *Handler) SidoList(w http.ResponseWriter, r *http.Request) {
	out, err := h.National.SidoList()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) SigunguList(w http.ResponseWriter, r *http.Request) {
	out, err := h.National.SigunguList(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) SigunguDetail(w http.ResponseWriter, r *http.Request) {
	out, err := h.National.SigunguDetail(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) EmdongList(w http.ResponseWriter, r *http.Request) {
	out, err := h.National.EmdongList(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

// Emdong serves one neighborhood; ?year= selects the snapshot.
func (h *Handler) Emdong(w http.ResponseWriter, r *http.Request) {
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	start := time.Now()
	out, err := h.Resolver.Neighborhood(chi.URLParam(r, "code"), year)
	utils.AddServerTiming(w, "resolve", start)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	out, err := h.Resolver.Years()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Timeseries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Resolver.Timeseries(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Enhanced(w http.ResponseWriter, r *http.Request) {
	out, err := h.Resolver.Enhanced(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	out, err := h.Seoul.Regions()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Region(w http.ResponseWriter, r *http.Request) {
	out, err := h.Seoul.Region(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}
