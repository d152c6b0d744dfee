// Package handler implements the HTTP API. Handlers read the caller's user id
// from the request, operate on that user's profile document, and broadcast a
// change message after every successful mutation.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseIndexParam reads the {index} path value. List items are addressed by
// ordinal position, so any non-negative integer is syntactically valid even
// when it points past the end of the list.
func parseIndexParam(r *http.Request) (int, error) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		return 0, strconv.ErrRange
	}
	return idx, nil
}
