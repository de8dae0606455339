package handlers

import (
	"net/http"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/auth"

	"github.com/gin-gonic/gin"
)

// WatchlistHandler serves the signed-in user's watchlist
type WatchlistHandler struct {
	watchlist WatchlistManager
}

func NewWatchlistHandler(watchlist WatchlistManager) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// List returns active watchlist entries.
// GET /api/watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		respondError(c, "Watchlist", auctionerrors.ErrUnauthorized, "")
		return
	}

	entries, err := h.watchlist.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, "Watchlist", err, "")
		return
	}
	respondOK(c, http.StatusOK, toWatchlistResponses(entries))
}
