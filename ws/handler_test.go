package ws

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"match-lab/domain/event"
	"match-lab/mocks"
)

func dialTestServer(t *testing.T, handler *Handler, query string) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func writeFrame(t *testing.T, conn *websocket.Conn, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func newTestHandler(t *testing.T, identity *mocks.MockIIdentity, presence *mocks.MockIPresenceRepository, queue *mocks.MockIQueueRepository) *Handler {
	t.Helper()
	registry := NewRegistry(slog.Default(), presence, queue, 1*time.Minute, 1*time.Hour, 3, 8)
	return NewHandler(slog.Default(), registry, identity, 2*time.Second)
}

func TestHandler_AuthHandshake(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mocks.NewMockIIdentity(ctrl)
	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	identity.EXPECT().ResolveAuthenticatedUser("valid-token").Return("user-1", "Alice", nil)
	presence.EXPECT().SetOnline("user-1", gomock.Any()).Return(nil)
	presence.EXPECT().SetOffline("user-1").Return(nil).AnyTimes()
	queue.EXPECT().RemoveUser("user-1").Return(false, nil).AnyTimes()

	handler := newTestHandler(t, identity, presence, queue)
	conn := dialTestServer(t, handler, "?kind=matching")

	// When authenticating with a valid token
	writeFrame(t, conn, map[string]string{"type": "auth", "token": "valid-token"})

	// Then the server confirms the identity
	frame := readFrame(t, conn)
	req.Equal("authenticated", frame["type"])
	req.Equal("user-1", frame["user_id"])
	req.Equal("Alice", frame["display_name"])
}

func TestHandler_RejectsBadTokenButKeepsSocketOpen(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mocks.NewMockIIdentity(ctrl)
	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	bad := identity.EXPECT().ResolveAuthenticatedUser("bad-token").Return("", "", assertionError{})
	identity.EXPECT().ResolveAuthenticatedUser("valid-token").Return("user-1", "Alice", nil).After(bad)
	presence.EXPECT().SetOnline("user-1", gomock.Any()).Return(nil)
	presence.EXPECT().SetOffline("user-1").Return(nil).AnyTimes()
	queue.EXPECT().RemoveUser("user-1").Return(false, nil).AnyTimes()

	handler := newTestHandler(t, identity, presence, queue)
	conn := dialTestServer(t, handler, "")

	// A rejected token answers with an error frame, not a hangup
	writeFrame(t, conn, map[string]string{"type": "auth", "token": "bad-token"})
	frame := readFrame(t, conn)
	req.Equal("error", frame["type"])

	// The client may retry on the same socket
	writeFrame(t, conn, map[string]string{"type": "auth", "token": "valid-token"})
	frame = readFrame(t, conn)
	req.Equal("authenticated", frame["type"])
}

func TestHandler_MalformedFrameGetsErrorReply(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mocks.NewMockIIdentity(ctrl)
	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)

	handler := newTestHandler(t, identity, presence, queue)
	conn := dialTestServer(t, handler, "")

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte("not json at all")))
	frame := readFrame(t, conn)
	req.Equal("error", frame["type"])

	// Unknown tagged types are rejected the same way
	writeFrame(t, conn, map[string]string{"type": "mystery"})
	frame = readFrame(t, conn)
	req.Equal("error", frame["type"])
}

func TestHandler_PingBeforeAuth(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mocks.NewMockIIdentity(ctrl)
	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)

	handler := newTestHandler(t, identity, presence, queue)
	conn := dialTestServer(t, handler, "")

	// Liveness pings work before authenticating
	writeFrame(t, conn, map[string]string{"type": "ping"})
	frame := readFrame(t, conn)
	req.Equal("pong", frame["type"])
	req.Positive(frame["timestamp"])
}

func TestHandler_RoomKindRequiresRoomParam(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := newTestHandler(t,
		mocks.NewMockIIdentity(ctrl),
		mocks.NewMockIPresenceRepository(ctrl),
		mocks.NewMockIQueueRepository(ctrl))

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?kind=room"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	req.Error(err)
	req.Equal(400, resp.StatusCode)
}

func TestDecodeInbound_RejectsEmptyAuthToken(t *testing.T) {
	req := require.New(t)

	_, err := event.DecodeInbound([]byte(`{"type":"auth","token":""}`))
	req.Error(err)
}

// assertionError is a trivial error for stubbing rejections.
type assertionError struct{}

func (assertionError) Error() string { return "invalid token" }
