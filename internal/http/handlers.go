package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/shuttle-score/internal/pubsub"
	"github.com/mauv0809/shuttle-score/internal/scoring"
	"github.com/mauv0809/shuttle-score/internal/session"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// CreateMatchHandler starts a match from the query parameters. Missing or
// invalid settings are replaced by the configured defaults.
func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved := s.Resolver.Resolve(r.URL.Query())
		sess := s.Store.Create(resolved.Settings, resolved.Mode, resolved.Formation)

		w.Header().Set("Location", "/matches/"+sess.ID)
		respondWithJSON(w, http.StatusCreated, sess.Snapshot())
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.lookup(w, r)
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusOK, sess.Snapshot())
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if err := s.Store.Delete(id); err != nil {
			writeLookupError(w, err, id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ActionHandler applies action to the match in the path. A rejected action
// still answers 200, with applied=false and the unchanged match.
func (s *Server) ActionHandler(action session.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.lookup(w, r)
		if !ok {
			return
		}

		cmd := session.Command{Action: action}
		if action == session.ActionPoint || action == session.ActionSwapSides {
			side, err := scoring.ParseSide(r.URL.Query().Get("side"))
			if err != nil {
				log.Warn("Rejected request with invalid side", "session", sess.ID, "action", action, "error", err)
				http.Error(w, "side must be A or B", http.StatusBadRequest)
				return
			}
			cmd.Side = side
		}

		out, err := sess.Apply(cmd)
		if err != nil {
			if errors.Is(err, scoring.ErrInvalidSide) {
				http.Error(w, "side must be A or B", http.StatusBadRequest)
				return
			}
			log.Error("Failed to apply action", "session", sess.ID, "action", action, "error", err)
			http.Error(w, "Failed to apply action", http.StatusInternalServerError)
			return
		}

		if out.Applied {
			s.Metrics.IncActionApplied(string(action))
			log.Info("Action applied", "session", sess.ID, "action", action, "side", cmd.Side, "score_a", out.State.Game.A, "score_b", out.State.Game.B, "history", out.HistoryDepth)
		} else {
			s.Metrics.IncActionRejected(string(action))
			log.Info("Action rejected", "session", sess.ID, "action", action, "phase", out.State.Phase())
		}

		if out.MatchEnded {
			s.Processor.MatchFinished(r.Context(), out.Result, isDryRunFromContext(r))
		}

		respondWithJSON(w, http.StatusOK, actionResponse{Applied: out.Applied, View: out.View})
	}
}

// MatchFinishedPushHandler receives match-finished events from a Pub/Sub push
// subscription and announces them.
func (s *Server) MatchFinishedPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match finished message", "body", string(bodyBytes))

		rawData, err := pubsub.ParsePushBody(bodyBytes)
		if err != nil {
			log.Error("Failed to parse push message", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var result session.Result
		if err := s.pubsub.ProcessMessage(rawData, &result); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		if err := s.Processor.Announce(r.Context(), result, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce result", "error", err, "session", result.SessionID)
			http.Error(w, "Failed to announce result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// ScoreCommandHandler answers the /score Slack command with the live score
// of the match whose id is given as the command text.
func (s *Server) ScoreCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		id := strings.TrimSpace(cmd.Text)
		if id == "" {
			http.Error(w, "Match id is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received score command", "session", id, "user", cmd.UserName)

		var msg any
		sess, err := s.Store.Get(id)
		if err != nil {
			log.Warn("Could not find match", "session", id, "error", err)
			msg, err = s.Notifier.FormatMatchNotFoundResponse(id)
		} else {
			msg, err = s.Notifier.FormatScoreResponse(sess.Snapshot())
		}
		if err != nil {
			http.Error(w, "Failed to format score", http.StatusInternalServerError)
			log.Error("Failed to format score", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}
