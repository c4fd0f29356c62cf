package httpapi

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"match-lab/domain"
	"match-lab/errors"
)

type contextKey string

const userIDKey contextKey = "user_id"

// requireIdentity resolves the bearer token and stores the verified user ID
// in the request context. An invalid token rejects only this request.
func (s *Server) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		userID, _, err := s.identity.ResolveAuthenticatedUser(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication failed")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

type credentialsRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Password    string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := s.accounts.Register(req.Email, req.DisplayName, req.Password)
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": string(token)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := s.accounts.Login(req.Email, req.Password)
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": string(token)})
}

func (s *Server) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	decoder := json.NewDecoder(r.Body)
	// Unknown fields are a schema violation, not something to carry along.
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid preferences payload")
		return
	}
	entry, err := s.matchmaking.Enqueue(callerID(r), prefs)
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, entry)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	removed, err := s.matchmaking.Cancel(callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

func (s *Server) handleQueueStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.matchmaking.Status(callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.matchmaking.MatchesFor(callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	if matches == nil {
		matches = []domain.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.matchmaking.MatchByID(mux.Vars(r)["id"], callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (s *Server) handleCancelMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.matchmaking.CancelMatch(mux.Vars(r)["id"], callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (s *Server) handleRoomToken(w http.ResponseWriter, r *http.Request) {
	token, err := s.matchmaking.RoomToken(mux.Vars(r)["id"], callerID(r))
	if err != nil {
		s.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// respondError maps sentinel errors to HTTP statuses without leaking
// internals.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrInvalidMessage),
		stderrors.Is(err, errors.ErrInvalidPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	case stderrors.Is(err, errors.ErrUnauthenticated),
		stderrors.Is(err, errors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "authentication failed")
	case stderrors.Is(err, errors.ErrNotParticipant):
		writeError(w, http.StatusForbidden, err.Error())
	case stderrors.Is(err, errors.ErrMatchNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case stderrors.Is(err, errors.ErrTerminalMatch),
		stderrors.Is(err, errors.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.log.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
