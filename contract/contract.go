//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"match-lab/domain"
	"match-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming in
// the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IQueueRepository is the shared waiting queue. It is the only state shared
// across the broadcaster loops besides presence, and is mutated exclusively
// through these operations.
type IQueueRepository interface {
	Enqueue(entry domain.QueueEntry) error
	RemoveUser(userID string) (bool, error)
	Peek(n int) ([]domain.QueueEntry, error)
	Snapshot() ([]domain.QueueEntry, error)
	Size() (int, error)
	Position(userID string) (int, error)
	// CommitMatch removes every participant's queue entry and persists the
	// match in a single store transaction. A participant whose entry is gone
	// fails the whole commit with ErrRaceLost and leaves no partial state.
	CommitMatch(match domain.Match) error
}

type IMatchRepository interface {
	SaveMatch(match domain.Match) error
	FindMatchByID(id string) (domain.Match, error)
	FindMatchesByUser(userID string) ([]domain.Match, error)
	UpdateStatus(id string, to domain.MatchStatus) (domain.Match, error)
	FindPendingOlderThan(cutoff time.Time) ([]domain.Match, error)
}

type IPresenceRepository interface {
	SetOnline(userID string, ttl time.Duration) error
	SetOffline(userID string) error
	OnlineUsers() ([]string, error)
}

type ICoordinator interface {
	DrainOnce(ctx context.Context) ([]domain.Match, error)
	EscalateTimeouts(ctx context.Context) ([]domain.Match, error)
	ExpireStale(ctx context.Context) (int, error)
}

// INotifier is the registry-facing send surface used by the broadcaster
// loops. Implementations must isolate per-connection failures.
type INotifier interface {
	Dispatch(n event.Notification) int
	SendToUser(userID string, payload any) bool
	BroadcastToKind(kind domain.ConnectionKind, payload any, excludeUserID string) int
	BroadcastToRoom(room string, payload any) int
}

// IIdentity resolves a bearer token to a verified user identity.
type IIdentity interface {
	ResolveAuthenticatedUser(token string) (userID, displayName string, err error)
}

// IRoomProvisioner hands out opaque access tokens for the media transport.
// The core never interprets the token.
type IRoomProvisioner interface {
	IssueRoomAccess(roomID, userID string) (string, error)
}

// IHashtagExtractor computes topic hashtags from free-form input. The core
// only consumes the resulting set.
type IHashtagExtractor interface {
	ComputeHashtags(raw string) ([]string, error)
}
