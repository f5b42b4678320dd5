package network

import (
	"net/http"

	"github.com/EmpoweredVote/insightforge/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Service *Service
}

func (h *Handler) Assembly(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Assembly()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Issue(chi.URLParam(r, "issue"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Clusters(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Clusters()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Summary()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}
