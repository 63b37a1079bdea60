package handler

import "net/http"

// Healthcheck reports liveness.
func Healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "Household Profiler API is live",
	})
}
