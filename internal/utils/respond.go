package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
)

func WriteJSON(w http.ResponseWriter, v any) {
	WriteJSONStatus(w, http.StatusOK, v)
}

// helper: write JSON with a specific HTTP status code
func WriteJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to its status code and writes {"detail": message}.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		reqID, _ := GetRequestIDFromContext(r.Context())
		log.Printf("[http] %s %s request_id=%s error: %v", r.Method, r.URL.Path, reqID, err)
	}
	WriteJSONStatus(w, status, map[string]string{"detail": apperr.Message(err)})
}
