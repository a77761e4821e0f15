package transport

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"meet-relay/domain"
	"meet-relay/errors"
	"meet-relay/observability"
	"meet-relay/services"

	"github.com/gorilla/websocket"
)

const capacityRejectReason = "Room is full"

// Handler owns the websocket endpoint. It upgrades the request, runs
// admission through the relay service, then drives the session from the
// connection's read loop until disconnect.
type Handler struct {
	log        *slog.Logger
	relay      services.IRelayService
	stats      *observability.RelayStats
	upgrader   websocket.Upgrader
	sendBuffer int
}

func NewHandler(log *slog.Logger, relay services.IRelayService, stats *observability.RelayStats, sendBuffer int) *Handler {
	return &Handler{
		log:   log,
		relay: relay,
		stats: stats,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The relay has no authentication surface; origin filtering
			// belongs to the deployment in front of it.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sendBuffer: sendBuffer,
	}
}

// Routes exposes the endpoints: the websocket entry and a trivial
// health probe.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/{pinCode}", h.serveWS)
	mux.HandleFunc("GET /", h.serveRoot)
	return mux
}

func (h *Handler) serveRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"Hello":"World"}`))
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	room := domain.RoomCode(r.PathValue("pinCode"))
	if room == "" {
		http.Error(w, "missing pin code", http.StatusBadRequest)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "err", err)
		return
	}

	conn := NewConn(ws, h.sendBuffer)
	go conn.writePump(h.log)

	session, err := h.relay.Admit(room, conn)
	if err != nil {
		if stderrors.Is(err, errors.ErrRoomFull) {
			h.log.Info("Connection rejected, room at capacity", "room", room)
			_ = conn.Close(websocket.ClosePolicyViolation, capacityRejectReason)
			return
		}
		h.log.Error("Admission failed", "room", room, "err", err)
		_ = conn.Close(websocket.CloseInternalServerErr, "admission failed")
		return
	}

	h.stats.ConnOpened()
	h.log.Info("User connected to room", "room", room, "connId", conn.ID())

	defer func() {
		// Transition to Closed exactly once, whatever ended the read loop.
		session.Close()
		_ = conn.Close(websocket.CloseNormalClosure, "")
		h.stats.ConnClosed()
	}()

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				h.log.Warn("Read failed", "room", room, "connId", conn.ID(), "err", err)
			} else {
				h.log.Info("User disconnected from room", "room", room, "connId", conn.ID())
			}
			return
		}
		session.HandleFrame(r.Context(), raw)
	}
}
