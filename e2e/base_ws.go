package e2e

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meet-relay/observability"
	"meet-relay/repositories"
	"meet-relay/runtime"
	"meet-relay/services"
	"meet-relay/transport"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

const readTimeout = 2 * time.Second

type BaseRelaySuite struct {
	suite.Suite
	Config Config
	server *httptest.Server
	conns  []*websocket.Conn
}

// SetupSuite loads the environment configuration and, unless RELAY_ADDR
// targets a deployed relay, wires a full in-process one over a temp
// Badger store.
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.RelayAddr != "" {
		return
	}

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	log := slog.Default()
	stats := observability.NewRelayStats()
	registry := runtime.NewRegistry()
	dedup := runtime.NewDeduplicator()
	broadcaster := runtime.NewBroadcaster(log, registry, dedup, stats, time.Second)
	history := repositories.NewHistoryRepository(db, log, nil)
	counter := repositories.NewCounterRepository(db, log)
	relay := services.NewRelayService(log, registry, broadcaster, dedup,
		history, counter, stats, s.Config.RoomCapacity)
	handler := transport.NewHandler(log, relay, stats, 16)

	s.server = httptest.NewServer(handler.Routes())
	s.T().Cleanup(func() {
		s.server.Close()
		_ = db.Close()
	})
}

// TearDownTest closes the sockets dialed during the test. Closing here
// rather than in a subtest-scoped Cleanup keeps connections alive
// across the steps of a scenario.
func (s *BaseRelaySuite) TearDownTest() {
	for _, conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = nil
}

func (s *BaseRelaySuite) wsURL(pin string) string {
	if s.Config.RelayAddr != "" {
		return fmt.Sprintf("ws://%s/ws/%s", s.Config.RelayAddr, pin)
	}
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws/" + pin
}

// Step prints a colorized header for a scenario step in logs
func (s *BaseRelaySuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// wsClient is one simulated participant: a dialed socket plus the
// identity it presents in payloads.
type wsClient struct {
	conn   *websocket.Conn
	UserID string
	Name   string
	Pin    string
}

func (s *BaseRelaySuite) DialRoom(pin, name string) *wsClient {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(pin), nil)
	s.Require().NoError(err, "Failed to connect to relay room "+pin)
	s.conns = append(s.conns, conn)
	return &wsClient{
		conn:   conn,
		UserID: uuid.NewString(),
		Name:   name,
		Pin:    pin,
	}
}

func (c *wsClient) send(s *BaseRelaySuite, payload map[string]any) {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)
	s.Require().NoError(c.conn.WriteMessage(websocket.TextMessage, raw))
}

func (c *wsClient) Join(s *BaseRelaySuite) {
	c.send(s, map[string]any{
		"eventType": "join", "userId": c.UserID, "name": c.Name, "pinCode": c.Pin,
	})
}

func (c *wsClient) Leave(s *BaseRelaySuite) {
	c.send(s, map[string]any{
		"eventType": "leave", "userId": c.UserID, "pinCode": c.Pin,
	})
}

func (c *wsClient) Chat(s *BaseRelaySuite, text string) {
	c.send(s, map[string]any{
		"userId": c.UserID, "name": c.Name, "pinCode": c.Pin, "message": text,
	})
}

func (c *wsClient) ShareLocation(s *BaseRelaySuite, lat, lon float64) {
	c.send(s, map[string]any{
		"userId": c.UserID, "username": c.Name, "pinCode": c.Pin,
		"latitude": lat, "longitude": lon,
	})
}

func (c *wsClient) Ping(s *BaseRelaySuite) {
	s.Require().NoError(c.conn.WriteMessage(websocket.TextMessage, []byte("ping")))
}

// broadcastFrame is the decoded shape of any relayed event.
type broadcastFrame struct {
	Type      string  `json:"type"`
	PinCode   string  `json:"pinCode"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Message   string  `json:"message"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// ReadFrame blocks for the next relayed frame, failing the suite when
// nothing arrives within the read timeout.
func (c *wsClient) ReadFrame(s *BaseRelaySuite) broadcastFrame {
	s.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(readTimeout)))
	_, raw, err := c.conn.ReadMessage()
	s.Require().NoError(err, "Expected a relayed frame")

	if string(raw) == "pong" {
		return broadcastFrame{Type: "pong"}
	}
	var frame broadcastFrame
	s.Require().NoError(json.Unmarshal(raw, &frame))
	return frame
}
