package services

import "time"

const (
	EventBidPlaced     = "bid_placed"
	EventAuctionClosed = "auction_closed"
)

// ListingEvent is published after a bid or close has been committed
type ListingEvent struct {
	Type      string    `json:"type"`
	ListingID uint      `json:"listing_id"`
	Amount    string    `json:"amount,omitempty"`
	Bidder    string    `json:"bidder,omitempty"`
	Winner    string    `json:"winner,omitempty"`
	At        time.Time `json:"at"`
}

// EventPublisher receives committed listing events. Publish must not block.
type EventPublisher interface {
	Publish(event ListingEvent)
}

func publish(p EventPublisher, event ListingEvent) {
	if p == nil {
		return
	}
	p.Publish(event)
}
