package politicians

import (
	"net/http"
	"time"

	"github.com/EmpoweredVote/insightforge/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Matcher *Matcher
}

func (h *Handler) RosterByEmdong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	roster, err := h.Matcher.RosterFor(chi.URLParam(r, "code"))
	utils.AddServerTiming(w, "match", start)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, roster)
}

func (h *Handler) Assembly(w http.ResponseWriter, r *http.Request) {
	out, err := h.Matcher.AssemblyMembers()
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, out)
}
