package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/clintonb/alexa-skills/internal/alexa"
	"github.com/clintonb/alexa-skills/internal/skill"
	"github.com/clintonb/alexa-skills/internal/version"
)

// handleSkillRequest processes one voice turn: decode the envelope,
// dispatch the intent, encode the spoken response.
func (s *Server) handleSkillRequest(w http.ResponseWriter, r *http.Request) {
	defer func() {
		// A handler panic must still produce a spoken response; the
		// platform would otherwise read the turn as a dead skill.
		if rec := recover(); rec != nil {
			s.log.Error().Any("panic", rec).Msg("panic while handling voice request")
			writeJSON(w, http.StatusOK, skill.ErrorResponse())
		}
	}()

	var env alexa.RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		s.log.Warn().Err(err).Msg("malformed request envelope")
		writeError(w, http.StatusBadRequest, "malformed request envelope")
		return
	}

	resp := s.dispatcher.Dispatch(r.Context(), env)
	writeJSON(w, http.StatusOK, resp)
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: version.Version})
}

// handleNotFound returns a 404 for unknown routes.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "not found",
		"path":  r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
