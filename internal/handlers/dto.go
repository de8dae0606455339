package handlers

import (
	"time"

	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/services"
)

// Request DTOs

type registerRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email"`
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartBid    string `json:"start_bid" binding:"required"`
	ImageURL    string `json:"image_url"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

// listingActionRequest is the body of POST /api/listings/:id
type listingActionRequest struct {
	Action string `json:"action" binding:"required"`
	Bid    string `json:"bid"`
	Text   string `json:"text"`
}

type commentRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// Response DTOs. Money is rendered with two decimals.

type userResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type categoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type listingResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartBid     string    `json:"start_bid"`
	CurrentPrice string    `json:"current_price"`
	ImageURL     string    `json:"image_url,omitempty"`
	Category     string    `json:"category,omitempty"`
	CategoryID   uint      `json:"category_id"`
	CreatorID    uint      `json:"creator_id"`
	IsActive     bool      `json:"is_active"`
	Winner       *string   `json:"winner,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type commentResponse struct {
	ID        uint      `json:"id"`
	Commenter string    `json:"commenter"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type listingDetailResponse struct {
	listingResponse
	Creator  string            `json:"creator"`
	BidCount int64             `json:"bid_count"`
	Watching bool              `json:"watching"`
	IsOwner  bool              `json:"is_owner"`
	Comments []commentResponse `json:"comments"`
}

type bidResponse struct {
	ID        uint      `json:"id"`
	ListingID uint      `json:"listing_id"`
	Amount    string    `json:"amount"`
	Bidder    string    `json:"bidder,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type closedResponse struct {
	ListingID uint   `json:"listing_id"`
	Winner    string `json:"winner"`
	Amount    string `json:"amount,omitempty"`
}

type watchlistEntryResponse struct {
	ListingID uint             `json:"listing_id"`
	Listing   *listingResponse `json:"listing,omitempty"`
	AddedAt   time.Time        `json:"added_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toListingResponse(l *models.Listing) listingResponse {
	resp := listingResponse{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		StartBid:     l.StartBid.StringFixed(2),
		CurrentPrice: l.CurrentPrice().StringFixed(2),
		ImageURL:     l.ImageURL,
		CategoryID:   l.CategoryID,
		CreatorID:    l.CreatorID,
		IsActive:     l.IsActive,
		Winner:       l.Winner,
		CreatedAt:    l.CreatedAt,
	}
	if l.Category != nil {
		resp.Category = l.Category.Name
	}
	return resp
}

func toListingResponses(listings []*models.Listing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}

func toCategoryResponses(categories []*models.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func toCommentResponse(c *models.Comment) commentResponse {
	return commentResponse{ID: c.ID, Commenter: c.Commenter, Text: c.Text, CreatedAt: c.CreatedAt}
}

func toDetailResponse(d *services.ListingDetail, viewer models.Identity, watching bool) listingDetailResponse {
	resp := listingDetailResponse{
		listingResponse: toListingResponse(d.Listing),
		BidCount:        d.BidCount,
		Watching:        watching,
		IsOwner:         !viewer.IsZero() && viewer.UserID == d.Listing.CreatorID,
		Comments:        make([]commentResponse, 0, len(d.Comments)),
	}
	resp.CurrentPrice = d.CurrentPrice.StringFixed(2)
	if d.Listing.Creator != nil {
		resp.Creator = d.Listing.Creator.Username
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	return resp
}

func toBidResponse(b *models.Bid) bidResponse {
	resp := bidResponse{
		ID:        b.ID,
		ListingID: b.ListingID,
		Amount:    b.Amount.StringFixed(2),
		CreatedAt: b.CreatedAt,
	}
	if b.Bidder != nil {
		resp.Bidder = b.Bidder.Username
	}
	return resp
}

func toClosedResponse(r *services.ClosedResult) closedResponse {
	resp := closedResponse{ListingID: r.ListingID, Winner: r.Winner}
	if r.WinningBid != nil {
		resp.Amount = r.WinningBid.Amount.StringFixed(2)
	}
	return resp
}

func toWatchlistResponses(entries []*models.WatchlistEntry) []watchlistEntryResponse {
	out := make([]watchlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		item := watchlistEntryResponse{ListingID: e.ListingID, AddedAt: e.CreatedAt}
		if e.Listing != nil {
			listing := toListingResponse(e.Listing)
			item.Listing = &listing
		}
		out = append(out, item)
	}
	return out
}
