package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"match-lab/ai"
	"match-lab/auth"
	"match-lab/httpapi"
	"match-lab/matching"
	"match-lab/media"
	"match-lab/moderation"
	"match-lab/repositories"
	"match-lab/runtime"
	"match-lab/runtime/workers"
	"match-lab/services"
	"match-lab/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanups execute before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories
	queueRepository := repositories.NewQueueRepository(db, log, config.PriorityWeight)
	matchRepository := repositories.NewMatchRepository(db, log)
	presenceRepository := repositories.NewPresenceRepository(db)
	userRepository := repositories.NewUserRepository(db)

	// 4. Collaborators
	tokens := auth.NewTokenService(config.AuthSecret, config.AuthTokenDuration)
	provisioner := media.NewProvisioner(config.AuthSecret, config.RoomTokenDuration)
	extractor := ai.NewExtractor(config.MaxHashtags)
	moderator, err := moderation.NewModerator(config.BlockedHashtags)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}

	// 5. Core: registry, coordinator, broadcaster
	registry := ws.NewRegistry(log, presenceRepository, queueRepository,
		config.PresenceTTL, config.HeartbeatInterval,
		config.MaxMissedPings, config.SendBufferSize)

	coordinator := matching.NewCoordinator(log, queueRepository, matchRepository,
		config.MinSimilarity, config.MatchTimeout, config.MatchTTL)

	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	broadcaster := runtime.NewBroadcaster(log, supervisor, coordinator,
		queueRepository, presenceRepository, registry, registry.RefreshPresence,
		runtime.Intervals{
			Matching:        config.MatchingInterval,
			Timeout:         config.TimeoutInterval,
			Presence:        config.PresenceInterval,
			Telemetry:       config.TelemetryInterval,
			WaitPerPosition: config.WaitPerPosition,
		})

	// 6. Services & HTTP surface
	matchmakingService := services.NewMatchmakingService(log, queueRepository,
		matchRepository, extractor, moderator, provisioner, config.WaitPerPosition)
	authService := services.NewAuthService(userRepository, tokens)
	socketHandler := ws.NewHandler(log, registry, tokens, config.SocketAuthDeadline)
	server := httpapi.NewServer(log, matchmakingService, authService, tokens, socketHandler)

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go broadcaster.Start(ctx)

	// 8. HTTP server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: server.Router()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 10. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	broadcaster.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
