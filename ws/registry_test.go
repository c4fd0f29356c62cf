package ws

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"match-lab/domain"
	"match-lab/domain/event"
	"match-lab/mocks"
)

// fakeTransport records outbound frames instead of hitting a socket.
type fakeTransport struct {
	mu     sync.Mutex
	frames [][]byte
	pings  int
	closed bool

	pongHandler func(string) error
}

func (f *fakeTransport) ReadMessage() (int, []byte, error) {
	select {}
}

func (f *fakeTransport) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, data)
	return nil
}

func (f *fakeTransport) WriteControl(_ int, _ []byte, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return nil
}

func (f *fakeTransport) SetReadDeadline(time.Time) error  { return nil }
func (f *fakeTransport) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeTransport) SetPongHandler(h func(string) error) {
	f.pongHandler = h
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTransport) frameCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeTransport) pingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

func (f *fakeTransport) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// stuckTransport never completes a write, simulating a wedged consumer.
type stuckTransport struct {
	fakeTransport
}

func (s *stuckTransport) WriteMessage(int, []byte) error {
	select {}
}

func newTestRegistry(t *testing.T, presence *mocks.MockIPresenceRepository, queue *mocks.MockIQueueRepository, sendBuffer int) *Registry {
	t.Helper()
	return NewRegistry(slog.Default(), presence, queue, 1*time.Minute, 1*time.Hour, 3, sendBuffer)
}

func TestRegistry_RegisterMarksUserOnline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil)

	registry := newTestRegistry(t, presence, queue, 8)

	c := registry.Register(&fakeTransport{}, "alice", domain.ConnectionMatching, "")

	req.True(registry.IsOnline("alice"))
	req.Equal([]string{"alice"}, registry.OnlineUserIDs())
	req.NotEmpty(c.ID)
}

func TestRegistry_SendToUserReachesEveryConnection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil).Times(2)

	registry := newTestRegistry(t, presence, queue, 8)

	// Given one user connected from two devices
	first := &fakeTransport{}
	second := &fakeTransport{}
	registry.Register(first, "alice", domain.ConnectionMatching, "")
	registry.Register(second, "alice", domain.ConnectionMatching, "")

	// When sending to the user
	req.True(registry.SendToUser("alice", map[string]string{"type": "pong"}))

	// Then both transports eventually receive the frame
	req.Eventually(func() bool {
		return first.frameCount() == 1 && second.frameCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRegistry_SendToUserUnknownUser(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t,
		mocks.NewMockIPresenceRepository(ctrl),
		mocks.NewMockIQueueRepository(ctrl), 8)

	req.False(registry.SendToUser("ghost", map[string]string{"type": "pong"}))
}

func TestRegistry_DisconnectIsIdempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil)

	// Side effects must run once no matter how many times disconnect fires
	presence.EXPECT().SetOffline("alice").Return(nil).Times(1)
	queue.EXPECT().RemoveUser("alice").Return(true, nil).Times(1)

	registry := newTestRegistry(t, presence, queue, 8)
	transport := &fakeTransport{}
	c := registry.Register(transport, "alice", domain.ConnectionMatching, "")

	registry.Disconnect(c.ID)
	registry.Disconnect(c.ID)

	req.False(registry.IsOnline("alice"))
	req.True(transport.isClosed())
}

func TestRegistry_LastConnectionCleansUp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil).Times(2)

	registry := newTestRegistry(t, presence, queue, 8)
	first := registry.Register(&fakeTransport{}, "alice", domain.ConnectionMatching, "")
	second := registry.Register(&fakeTransport{}, "alice", domain.ConnectionGeneral, "")

	// Dropping one device keeps the user online and matchable
	registry.Disconnect(first.ID)
	req.True(registry.IsOnline("alice"))

	// Dropping the last one marks them offline and removes their queue entry
	presence.EXPECT().SetOffline("alice").Return(nil)
	queue.EXPECT().RemoveUser("alice").Return(true, nil)
	registry.Disconnect(second.ID)
	req.False(registry.IsOnline("alice"))
}

func TestRegistry_SlowConnectionDoesNotBlockOthers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil).Times(2)

	// Given one wedged device and one healthy one, with a tiny send buffer
	registry := newTestRegistry(t, presence, queue, 1)
	stuck := &stuckTransport{}
	healthy := &fakeTransport{}
	registry.Register(stuck, "alice", domain.ConnectionMatching, "")
	registry.Register(healthy, "alice", domain.ConnectionMatching, "")

	// When flooding the user, the wedged connection's buffer fills up and it
	// gets dropped while the healthy one keeps receiving
	for i := 0; i < 5; i++ {
		registry.SendToUser("alice", map[string]string{"type": "pong"})
		time.Sleep(10 * time.Millisecond)
	}

	req.Eventually(func() bool {
		return len(registry.ConnectionsOfUser("alice")) == 1
	}, 2*time.Second, 10*time.Millisecond)
	req.True(registry.IsOnline("alice"))
	req.Positive(healthy.frameCount())
}

func TestRegistry_BroadcastToKindExcludesUser(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	registry := newTestRegistry(t, presence, queue, 8)
	alice := &fakeTransport{}
	bob := &fakeTransport{}
	room := &fakeTransport{}
	registry.Register(alice, "alice", domain.ConnectionMatching, "")
	registry.Register(bob, "bob", domain.ConnectionMatching, "")
	registry.Register(room, "clara", domain.ConnectionRoom, "room-1")

	// When broadcasting to matching connections excluding alice
	reached := registry.BroadcastToKind(domain.ConnectionMatching, map[string]string{"type": "pong"}, "alice")

	// Then only bob's matching connection is hit
	req.Equal(1, reached)
	req.Eventually(func() bool { return bob.frameCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	req.Zero(alice.frameCount())
	req.Zero(room.frameCount())
}

func TestRegistry_DispatchRoutesByTarget(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	registry := newTestRegistry(t, presence, queue, 8)
	registry.Register(&fakeTransport{}, "alice", domain.ConnectionMatching, "")
	registry.Register(&fakeTransport{}, "bob", domain.ConnectionRoom, "room-1")

	req.Equal(1, registry.Dispatch(event.ToUser("alice", map[string]string{"type": "pong"})))
	req.Equal(1, registry.Dispatch(event.ToRoom("room-1", map[string]string{"type": "pong"})))
	req.Equal(1, registry.Dispatch(event.ToKind(domain.ConnectionMatching, "", map[string]string{"type": "pong"})))
	req.Equal(0, registry.Dispatch(event.ToUser("ghost", map[string]string{"type": "pong"})))
}

func TestConnection_HeartbeatFailureDisconnects(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil)
	presence.EXPECT().SetOffline("alice").Return(nil)
	queue.EXPECT().RemoveUser("alice").Return(false, nil)

	// Given a registry pinging every 10ms and a peer that never pongs
	registry := NewRegistry(slog.Default(), presence, queue, 1*time.Minute, 10*time.Millisecond, 3, 8)
	transport := &fakeTransport{}
	registry.Register(transport, "alice", domain.ConnectionMatching, "")

	// Then after the allowed misses the connection is torn down
	req.Eventually(func() bool { return !registry.IsOnline("alice") }, 2*time.Second, 10*time.Millisecond)
	req.True(transport.isClosed())
}

func TestConnection_HeartbeatEvictsOnMissLimitTick(t *testing.T) {
	req := require.New(t)

	// Given a silent peer and a miss limit of 3
	transport := &fakeTransport{}
	conn := newConnection(transport, "alice", domain.ConnectionMatching, "", 8)

	failures := make(chan error, 1)
	go conn.writePump(20*time.Millisecond, 3, func(_ *Connection, err error) {
		failures <- err
	})

	// Then eviction fires on the third silent interval, not a tick later
	select {
	case err := <-failures:
		req.ErrorIs(err, errHeartbeatExpired)
	case <-time.After(2 * time.Second):
		req.Fail("expected heartbeat eviction")
	}
	req.Equal(2, transport.pingCount())
}

func TestConnection_PongResetsMissCounter(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presence := mocks.NewMockIPresenceRepository(ctrl)
	queue := mocks.NewMockIQueueRepository(ctrl)
	presence.EXPECT().SetOnline("alice", gomock.Any()).Return(nil)

	registry := NewRegistry(slog.Default(), presence, queue, 1*time.Minute, 20*time.Millisecond, 3, 8)
	transport := &fakeTransport{}
	registry.Register(transport, "alice", domain.ConnectionMatching, "")

	// A pong before every deadline keeps the connection alive
	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		req.NoError(transport.pongHandler(""))
		time.Sleep(10 * time.Millisecond)
	}

	req.True(registry.IsOnline("alice"))
}
