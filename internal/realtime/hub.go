package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Ricozl/commerce/internal/services"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub fans committed listing events out to the websocket clients
// subscribed to that listing.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint]map[*Client]struct{}
	upgrader    websocket.Upgrader
}

// NewHub creates a hub. checkOrigin may be nil to accept any origin.
func NewHub(checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Hub{
		subscribers: make(map[uint]map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// Serve upgrades the request and subscribes the connection to listingID
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, listingID uint) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:        uuid.NewString(),
		ListingID: listingID,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
	h.subscribe(client)

	go client.writeMessages()
	go client.readMessages(h)
	return nil
}

// Publish sends event to the listing's subscribers without blocking.
// Clients whose queue is full are dropped.
func (h *Hub) Publish(event services.ListingEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		utils.Error("Failed to encode listing event", map[string]any{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.subscribers[event.ListingID] {
		select {
		case client.send <- message:
		default:
			utils.Warn("Dropping slow websocket client", map[string]any{
				"client_id":  client.ID,
				"listing_id": event.ListingID,
			})
			h.removeLocked(client)
		}
	}
}

// Subscribers counts the clients watching a listing
func (h *Hub) Subscribers(listingID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[listingID])
}

func (h *Hub) subscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.subscribers[c.ListingID]
	if !ok {
		clients = make(map[*Client]struct{})
		h.subscribers[c.ListingID] = clients
	}
	clients[c] = struct{}{}
}

func (h *Hub) unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	clients, ok := h.subscribers[c.ListingID]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.subscribers, c.ListingID)
	}
	c.close()
}
