// Package httpapi is the request/response surface: account endpoints, queue
// management (enqueue happens here, not over the socket), match history, and
// the WebSocket upgrade.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"match-lab/contract"
	"match-lab/services"
)

type Server struct {
	log         *slog.Logger
	matchmaking *services.MatchmakingService
	accounts    services.IAuthService
	identity    contract.IIdentity
	socket      http.Handler
}

func NewServer(
	log *slog.Logger,
	matchmaking *services.MatchmakingService,
	accounts services.IAuthService,
	identity contract.IIdentity,
	socket http.Handler,
) *Server {
	return &Server{
		log:         log,
		matchmaking: matchmaking,
		accounts:    accounts,
		identity:    identity,
		socket:      socket,
	}
}

// Router assembles the route table and wraps it with CORS.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/ws", s.socket).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", s.handleRegister).Methods("POST")
	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireIdentity)
	authed.HandleFunc("/queue", s.handleEnqueue).Methods("POST")
	authed.HandleFunc("/queue", s.handleCancel).Methods("DELETE")
	authed.HandleFunc("/queue/status", s.handleQueueStatus).Methods("GET")
	authed.HandleFunc("/matches", s.handleMatches).Methods("GET")
	authed.HandleFunc("/matches/{id}", s.handleMatch).Methods("GET")
	authed.HandleFunc("/matches/{id}", s.handleCancelMatch).Methods("DELETE")
	authed.HandleFunc("/matches/{id}/room-token", s.handleRoomToken).Methods("POST")

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
