package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 30 * time.Second}

	if s.Config.ServerAddr == "" {
		s.T().Skip("SERVER_ADDR not set, skipping e2e scenarios")
	}
}

// Step prints a colorized header so scenario phases stand out in logs.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// JSON performs a request against the server and decodes the JSON response.
func (s *BaseHTTPSuite) JSON(method, path, token string, payload any) (int, map[string]any) {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, s.Config.ServerAddr+path, body)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		pretty, _ := json.MarshalIndent(decoded, "", "  ")
		fmt.Fprintln(&logBuilder, "\nRESPONSE:")
		fmt.Fprintln(&logBuilder, string(pretty))
	}
	s.T().Log(logBuilder.String())

	return resp.StatusCode, decoded
}

// Register creates a fresh account and returns its session token.
func (s *BaseHTTPSuite) Register(email, displayName string) string {
	status, body := s.JSON(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":        email,
		"display_name": displayName,
		"password":     "Str0ng!Password",
	})
	s.Require().Equal(http.StatusCreated, status)
	token, _ := body["token"].(string)
	s.Require().NotEmpty(token)
	return token
}

// Socket opens a matching WebSocket connection and authenticates it.
func (s *BaseHTTPSuite) Socket(token string) *websocket.Conn {
	wsURL := strings.Replace(s.Config.ServerAddr, "http", "ws", 1) + "/ws?kind=matching"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	s.Require().NoError(conn.WriteJSON(map[string]string{"type": "auth", "token": token}))
	frame := s.ReadFrame(conn, 10*time.Second)
	s.Require().Equal("authenticated", frame["type"])
	return conn
}

// ReadFrame reads one JSON frame from the socket within the deadline.
func (s *BaseHTTPSuite) ReadFrame(conn *websocket.Conn, timeout time.Duration) map[string]any {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(timeout)))
	var frame map[string]any
	s.Require().NoError(conn.ReadJSON(&frame))
	return frame
}

// AwaitFrame reads frames until one of the wanted type arrives, skipping
// interleaved queue updates and presence announcements.
func (s *BaseHTTPSuite) AwaitFrame(conn *websocket.Conn, wanted string, timeout time.Duration) map[string]any {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		frame := s.ReadFrame(conn, time.Until(deadline))
		if frame["type"] == wanted {
			return frame
		}
		s.T().Logf("skipping %v frame while waiting for %s", frame["type"], wanted)
	}
	s.Require().Failf("timeout", "no %s frame within %v", wanted, timeout)
	return nil
}
