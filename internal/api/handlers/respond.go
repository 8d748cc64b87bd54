package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response body")
	}
}

// respondInternalError is the catch-all for unexpected failures: the cause
// is logged server-side and never disclosed to the client.
func respondInternalError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error":   "Internal Server Error",
		"success": false,
	})
}
