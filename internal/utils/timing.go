package utils

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AddServerTiming appends a Server-Timing entry for a step that started at start.
func AddServerTiming(w http.ResponseWriter, name string, start time.Time) {
	ms := float64(time.Since(start).Microseconds()) / 1000
	w.Header().Add("Server-Timing", fmt.Sprintf("%s;dur=%.1f", name, ms))
}

// ServerTimings returns the step names recorded on h.
func ServerTimings(h http.Header) []string {
	var names []string
	for _, v := range h.Values("Server-Timing") {
		for _, entry := range strings.Split(v, ",") {
			name, _, _ := strings.Cut(strings.TrimSpace(entry), ";")
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
