package search

import (
	"net/http"

	"github.com/EmpoweredVote/insightforge/internal/utils"
)

type Handler struct {
	Searcher *Searcher
}

// Search serves GET /api/search?q=&type=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Searcher.Search(q.Get("q"), q.Get("type"))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, res)
}
