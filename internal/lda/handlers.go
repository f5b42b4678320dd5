package lda

import (
	"net/http"

	"github.com/EmpoweredVote/insightforge/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Provider Provider
}

func (h *Handler) District(w http.ResponseWriter, r *http.Request) {
	out, err := h.Provider.District(chi.URLParam(r, "gu"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Assembly(w http.ResponseWriter, r *http.Request) {
	out, err := h.Provider.Assembly(chi.URLParam(r, "name"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}

func (h *Handler) Local(w http.ResponseWriter, r *http.Request) {
	out, err := h.Provider.Local(chi.URLParam(r, "name"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}
