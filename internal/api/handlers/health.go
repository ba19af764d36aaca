package handlers

import (
	"net/http"
	"strings"
)

// Health provides a minimal liveness check endpoint.
// It does not probe the upstream weather services.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		MethodNotAllowed(http.MethodGet, http.MethodHead)(w, r)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// MethodNotAllowed answers 405 with an Allow header listing the accepted methods.
func MethodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
