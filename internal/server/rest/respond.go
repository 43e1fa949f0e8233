// Package rest exposes the HTTP API of the site backend: public contact and
// news endpoints plus bearer-protected management ones.
package rest

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v with the given status. Encoding failures are silent;
// headers are already gone by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends an error body in the shape clients extract messages from.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}
