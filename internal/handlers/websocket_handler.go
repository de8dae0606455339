package handlers

import (
	"context"
	"net/http"

	"github.com/Ricozl/commerce/internal/services"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gin-gonic/gin"
)

// FeedServer upgrades a request into a listing feed subscription
type FeedServer interface {
	Serve(w http.ResponseWriter, r *http.Request, listingID uint) error
}

// listingLookup is the part of the catalogue the feed needs
type listingLookup interface {
	GetListingDetail(ctx context.Context, listingID uint) (*services.ListingDetail, error)
}

// FeedHandler serves the live listing feed
type FeedHandler struct {
	feed     FeedServer
	listings listingLookup
}

func NewFeedHandler(feed FeedServer, listings listingLookup) *FeedHandler {
	return &FeedHandler{feed: feed, listings: listings}
}

// Subscribe streams bid and close events for one listing.
// GET /ws/listings/:id
func (h *FeedHandler) Subscribe(c *gin.Context) {
	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}

	if _, err := h.listings.GetListingDetail(c.Request.Context(), listingID); err != nil {
		respondError(c, "ListingFeed", err, "")
		return
	}

	if err := h.feed.Serve(c.Writer, c.Request, listingID); err != nil {
		// the upgrader has already written the error response
		utils.Warn("ListingFeed: upgrade failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}
	utils.Debug("ListingFeed: subscribed", map[string]any{"listing_id": listingID})
}
