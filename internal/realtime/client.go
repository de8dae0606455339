package realtime

import (
	"sync"
	"time"

	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Client is one websocket subscriber of a listing feed
type Client struct {
	ID        string
	ListingID uint
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// readMessages drains the connection until the peer goes away. Subscribers
// never send anything meaningful; reading keeps pongs and close frames flowing.
func (c *Client) readMessages(hub *Hub) {
	defer hub.unsubscribe(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			utils.Debug("Websocket read ended", map[string]any{"client_id": c.ID, "error": err.Error()})
			return
		}
	}
}

// writeMessages forwards queued events and keeps the connection alive with pings
func (c *Client) writeMessages() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				utils.Debug("Websocket write failed", map[string]any{"client_id": c.ID, "error": err.Error()})
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close stops the writer; safe to call more than once
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}
