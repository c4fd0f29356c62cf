package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"match-lab/ai"
	"match-lab/auth"
	"match-lab/domain"
	"match-lab/media"
	"match-lab/moderation"
	"match-lab/repositories"
	"match-lab/services"
)

type apiFixture struct {
	server  *httptest.Server
	matches *repositories.MatchRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	log := slog.Default()

	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	queue := repositories.NewQueueRepository(db, log, 10_000_000_000)
	matches := repositories.NewMatchRepository(db, log)
	users := repositories.NewUserRepository(db)

	tokens := auth.NewTokenService("test-secret", 1*time.Hour)
	moderator, err := moderation.NewModerator([]string{"casino"})
	require.NoError(t, err)

	matchmaking := services.NewMatchmakingService(
		log, queue, matches, ai.NewExtractor(10), moderator,
		media.NewProvisioner("room-secret", 5*time.Minute), 15*time.Second)
	accounts := services.NewAuthService(users, tokens)

	socket := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSwitchingProtocols)
	})
	server := httptest.NewServer(NewServer(log, matchmaking, accounts, tokens, socket).Router())
	t.Cleanup(server.Close)

	return &apiFixture{server: server, matches: matches}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, f.server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (f *apiFixture) registerUser(t *testing.T, email string) string {
	t.Helper()
	resp, body := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":        email,
		"display_name": "Alice",
		"password":     "Str0ng!Password",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAPI_Health(t *testing.T) {
	req := require.New(t)
	fixture := newAPIFixture(t)

	resp, body := fixture.do(t, http.MethodGet, "/health", "", nil)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("healthy", body["status"])
}

func TestAPI_RegisterLoginFlow(t *testing.T) {
	req := require.New(t)
	fixture := newAPIFixture(t)

	fixture.registerUser(t, "alice@example.com")

	// Duplicate registration conflicts
	resp, _ := fixture.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":        "alice@example.com",
		"display_name": "Alice",
		"password":     "Str0ng!Password",
	})
	req.Equal(http.StatusConflict, resp.StatusCode)

	// Login with the right password succeeds
	resp, body := fixture.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "Str0ng!Password",
	})
	req.Equal(http.StatusOK, resp.StatusCode)
	req.NotEmpty(body["token"])

	// A wrong password is rejected with a generic message
	resp, _ = fixture.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "WrongPassword1!",
	})
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_QueueLifecycle(t *testing.T) {
	req := require.New(t)
	fixture := newAPIFixture(t)
	token := fixture.registerUser(t, "alice@example.com")

	// Enqueue with explicit hashtags
	resp, body := fixture.do(t, http.MethodPost, "/api/queue", token, map[string]any{
		"hashtags": []string{"#AI", "#Music"},
	})
	req.Equal(http.StatusAccepted, resp.StatusCode)
	req.ElementsMatch([]any{"#ai", "#music"}, body["hashtags"])

	// Status reflects the waiting entry
	resp, body = fixture.do(t, http.MethodGet, "/api/queue/status", token, nil)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal(true, body["waiting"])
	req.Equal(1.0, body["position"])

	// Cancel removes it, a second cancel is a harmless no-op
	resp, body = fixture.do(t, http.MethodDelete, "/api/queue", token, nil)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal(true, body["removed"])

	resp, body = fixture.do(t, http.MethodDelete, "/api/queue", token, nil)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal(false, body["removed"])
}

func TestAPI_EnqueueRejectsUnknownFields(t *testing.T) {
	req := require.New(t)
	fixture := newAPIFixture(t)
	token := fixture.registerUser(t, "alice@example.com")

	resp, _ := fixture.do(t, http.MethodPost, "/api/queue", token, map[string]any{
		"hashtags":  []string{"#ai"},
		"surprise": "field",
	})
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	req := require.New(t)
	fixture := newAPIFixture(t)

	resp, _ := fixture.do(t, http.MethodGet, "/api/queue/status", "", nil)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = fixture.do(t, http.MethodGet, "/api/queue/status", "garbage-token", nil)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_MatchAccessControl(t *testing.T) {
	req := require.New(t)
	fixture := newAPIFixture(t)
	aliceToken := fixture.registerUser(t, "alice@example.com")
	malloryToken := fixture.registerUser(t, "mallory@example.com")

	// Resolve alice's user id from her own empty match list first
	resp, _ := fixture.do(t, http.MethodGet, "/api/matches", aliceToken, nil)
	req.Equal(http.StatusOK, resp.StatusCode)

	// Seed a match alice participates in
	aliceID := userIDFromToken(t, aliceToken)
	now := time.Now().UTC()
	match := domain.Match{
		ID:           "match-1",
		Participants: []string{aliceID, "someone-else"},
		Status:       domain.MatchMatched,
		Hashtags:     []string{"#ai"},
		Confidence:   0.5,
		CreatedAt:    now,
		MatchedAt:    &now,
		RoomID:       "room-1",
	}
	req.NoError(fixture.matches.SaveMatch(match))

	// A participant reads the match and gets a room token
	resp, body := fixture.do(t, http.MethodGet, "/api/matches/match-1", aliceToken, nil)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("match-1", body["id"])

	resp, body = fixture.do(t, http.MethodPost, "/api/matches/match-1/room-token", aliceToken, nil)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.NotEmpty(body["token"])

	// An outsider is rejected, a missing match is not found
	resp, _ = fixture.do(t, http.MethodGet, "/api/matches/match-1", malloryToken, nil)
	req.Equal(http.StatusForbidden, resp.StatusCode)

	resp, _ = fixture.do(t, http.MethodGet, "/api/matches/ghost", aliceToken, nil)
	req.Equal(http.StatusNotFound, resp.StatusCode)

	// Cancelling ends the match; room access is then refused
	resp, _ = fixture.do(t, http.MethodDelete, "/api/matches/match-1", aliceToken, nil)
	req.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = fixture.do(t, http.MethodPost, "/api/matches/match-1/room-token", aliceToken, nil)
	req.Equal(http.StatusConflict, resp.StatusCode)
}

func userIDFromToken(t *testing.T, token string) string {
	t.Helper()
	tokens := auth.NewTokenService("test-secret", 1*time.Hour)
	userID, _, err := tokens.ResolveAuthenticatedUser(token)
	require.NoError(t, err)
	return userID
}
