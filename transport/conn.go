// Package transport adapts gorilla/websocket connections to the
// contract.Connection handle the core holds. Each socket gets a
// buffered send channel drained by a single write pump, so payloads
// enqueued by one sender reach the wire in submission order.
package transport

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"meet-relay/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

type Conn struct {
	id        string
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewConn(ws *websocket.Conn, sendBuffer int) *Conn {
	return &Conn{
		id:   uuid.NewString(),
		ws:   ws,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Conn) ID() string { return c.id }

// Send enqueues a payload for the write pump. It fails when the
// connection is closed, the caller's context expires, or the buffer is
// full — a full buffer means the client stopped draining and is treated
// as dead rather than allowed to stall the broadcast.
func (c *Conn) Send(ctx context.Context, payload []byte) error {
	select {
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return errors.ErrConnectionClosed
	case <-ctx.Done():
		return errors.ErrSendTimeout
	}
}

// Close sends a close frame with the given code and reason, then tears
// the socket down. Safe to call multiple times; only the first wins.
func (c *Conn) Close(code int, reason string) error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		deadline := time.Now().Add(writeWait)
		msg := websocket.FormatCloseMessage(code, reason)
		if writeErr := c.ws.WriteControl(websocket.CloseMessage, msg, deadline); writeErr != nil {
			err = writeErr
		}
		if closeErr := c.ws.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	})
	return err
}

// writePump is the only goroutine allowed to write data frames. It
// drains the send channel under a write deadline and keeps the
// connection alive with protocol-level pings.
func (c *Conn) writePump(log *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close(websocket.CloseAbnormalClosure, "write failed")
	}()

	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Debug("Write failed, dropping connection", "connId", c.id, "err", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
