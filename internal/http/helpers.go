package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/shuttle-score/internal/session"
	"github.com/slack-go/slack"
)

// lookup resolves the {id} path value, writing a 404 when it is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	sess, err := s.Store.Get(id)
	if err != nil {
		writeLookupError(w, err, id)
		return nil, false
	}
	return sess, true
}

func writeLookupError(w http.ResponseWriter, err error, id string) {
	if errors.Is(err, session.ErrNotFound) {
		log.Debug("Match not found", "session", id)
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}
	log.Error("Failed to look up match", "session", id, "error", err)
	http.Error(w, "Failed to look up match", http.StatusInternalServerError)
}

func respondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	respondWithJSON(w, http.StatusOK, msg)
}
