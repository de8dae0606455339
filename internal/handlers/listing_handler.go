package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/auth"
	"github.com/Ricozl/commerce/internal/services"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gin-gonic/gin"
)

// Listing page actions
const (
	ActionPlaceBid        = "place_bid"
	ActionSaveWatchlist   = "save_watchlist"
	ActionRemoveWatchlist = "remove_watchlist"
	ActionEndAuction      = "end_auction"
	ActionAddComment      = "add_comment"
)

// ListingHandler serves the catalogue and the listing page actions
type ListingHandler struct {
	catalog   ListingCatalog
	bids      BidPlacer
	closer    AuctionCloser
	watchlist WatchlistManager
	comments  CommentPoster
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(
	catalog ListingCatalog,
	bids BidPlacer,
	closer AuctionCloser,
	watchlist WatchlistManager,
	comments CommentPoster,
) *ListingHandler {
	return &ListingHandler{
		catalog:   catalog,
		bids:      bids,
		closer:    closer,
		watchlist: watchlist,
		comments:  comments,
	}
}

// Index lists active listings.
// GET /api/listings
func (h *ListingHandler) Index(c *gin.Context) {
	listings, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, "Index", err, "")
		return
	}
	respondOK(c, http.StatusOK, toListingResponses(listings))
}

// Create adds a new listing.
// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		respondError(c, "CreateListing", auctionerrors.ErrUnauthorized, "")
		return
	}

	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "CreateListing", err, "/create")
		return
	}

	listing, err := h.catalog.CreateListing(c.Request.Context(), identity, services.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		StartBid:    req.StartBid,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondError(c, "CreateListing", err, "/create")
		return
	}

	respondMessage(c, http.StatusCreated, LevelSuccess, "New Listing was Saved.", indexPath, toListingResponse(listing))
}

// Categories lists all categories.
// GET /api/categories
func (h *ListingHandler) Categories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, "Categories", err, "")
		return
	}
	respondOK(c, http.StatusOK, toCategoryResponses(categories))
}

// CategoryListings lists the active listings in one category.
// GET /api/categories/:name/listings
func (h *ListingHandler) CategoryListings(c *gin.Context) {
	category, listings, err := h.catalog.ListByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "CategoryListings", err, "")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"category": category.Name,
		"listings": toListingResponses(listings),
	})
}

// Detail shows one listing with its current price and comments.
// GET /api/listings/:id
func (h *ListingHandler) Detail(c *gin.Context) {
	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}

	detail, err := h.catalog.GetListingDetail(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, "ListingDetail", err, "")
		return
	}

	identity, _ := auth.CurrentIdentity(c)
	watching, err := h.watchlist.IsWatching(c.Request.Context(), identity, listingID)
	if err != nil {
		respondError(c, "ListingDetail", err, "")
		return
	}

	respondOK(c, http.StatusOK, toDetailResponse(detail, identity, watching))
}

// Bids lists a listing's bids, highest first.
// GET /api/listings/:id/bids
func (h *ListingHandler) Bids(c *gin.Context) {
	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}

	bids, err := h.catalog.ListBids(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, "ListingBids", err, "")
		return
	}

	out := make([]bidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, toBidResponse(b))
	}
	respondOK(c, http.StatusOK, out)
}

// Action runs one of the listing page actions.
// POST /api/listings/:id
func (h *ListingHandler) Action(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		respondError(c, "ListingAction", auctionerrors.ErrUnauthorized, "")
		return
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}

	var req listingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "ListingAction", err, listingPath(listingID))
		return
	}

	ctx := c.Request.Context()
	back := listingPath(listingID)

	switch req.Action {
	case ActionPlaceBid:
		bid, err := h.bids.PlaceBid(ctx, identity, listingID, req.Bid)
		if err != nil {
			respondError(c, "PlaceBid", err, back)
			return
		}
		respondMessage(c, http.StatusCreated, LevelSuccess, "Your Bid is the New Current Price.", back, toBidResponse(bid))

	case ActionSaveWatchlist:
		if _, err := h.watchlist.Add(ctx, identity, listingID); err != nil {
			respondError(c, "SaveWatchlist", err, back)
			return
		}
		respondMessage(c, http.StatusOK, LevelSuccess, "Listing is now on Watchlist", back, nil)

	case ActionRemoveWatchlist:
		if err := h.watchlist.Remove(ctx, identity, listingID); err != nil {
			respondError(c, "RemoveWatchlist", err, watchlistPath)
			return
		}
		respondMessage(c, http.StatusOK, LevelSuccess, "Listing is removed from Watchlist.", watchlistPath, nil)

	case ActionEndAuction:
		result, err := h.closer.CloseAuction(ctx, identity, listingID)
		if err != nil {
			respondError(c, "EndAuction", err, back)
			return
		}
		respondMessage(c, http.StatusOK, LevelSuccess, closedText(result), back, toClosedResponse(result))

	case ActionAddComment:
		comment, err := h.comments.AddComment(ctx, identity, listingID, req.Text)
		if err != nil {
			respondError(c, "AddComment", err, back)
			return
		}
		respondMessage(c, http.StatusCreated, LevelSuccess, "Comments are saved to listing.", back, toCommentResponse(comment))

	default:
		utils.Warn("ListingAction: unknown action", map[string]any{"action": req.Action, "listing_id": listingID})
		respondError(c, "ListingAction", auctionerrors.ErrUnknownAction, back)
	}
}

func closedText(result *services.ClosedResult) string {
	if result.WinningBid == nil {
		return "Auction has ended with no bids."
	}
	return "Auction has ended. The winner is " + result.Winner + "."
}

// listingIDParam parses :id and replies 404 when it is not a listing id
func listingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, "listingIDParam", auctionerrors.ErrListingNotFound, "")
		return 0, false
	}
	return uint(id), true
}
