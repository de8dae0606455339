package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoWinner is frozen into Listing.Winner when an auction closes without bids
const NoWinner = "none"

// Category groups listings
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}

// Listing represents an item put up for auction
type Listing struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Title       string              `gorm:"size:64;not null;index" json:"title"`
	Description string              `gorm:"size:512;not null" json:"description"`
	StartBid    decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"start_bid"`
	ImageURL    string              `gorm:"size:1024" json:"image_url,omitempty"`
	CategoryID  uint                `gorm:"not null;index" json:"category_id"`
	Category    *Category           `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	IsActive    bool                `gorm:"not null;index" json:"is_active"`
	CreatorID   uint                `gorm:"not null;index" json:"creator_id"`
	Creator     *User               `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	HighestBid  decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"highest_bid"`
	Winner      *string             `gorm:"size:64" json:"winner,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// TableName specifies the table name for Listing model
func (Listing) TableName() string {
	return "listings"
}

// CurrentPrice is the cached highest bid, or the starting bid when nobody has bid yet
func (l *Listing) CurrentPrice() decimal.Decimal {
	if l.HighestBid.Valid {
		return l.HighestBid.Decimal
	}
	return l.StartBid
}

// Bid is an accepted offer on a listing. Bids are never updated or deleted.
type Bid struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	ListingID uint            `gorm:"not null;index" json:"listing_id"`
	Listing   *Listing        `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	BidderID  uint            `gorm:"not null;index" json:"bidder_id"`
	Bidder    *User           `gorm:"foreignKey:BidderID;constraint:OnDelete:CASCADE" json:"bidder,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName specifies the table name for Bid model
func (Bid) TableName() string {
	return "bids"
}

// Comment is free text attached to a listing
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	Listing   *Listing  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Commenter string    `gorm:"size:64;not null;default:Anonymous" json:"commenter"`
	Text      string    `gorm:"size:512" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}

// WatchlistEntry marks a listing as watched by a user. Removal clears IsActive
// instead of deleting the row.
type WatchlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListingID uint      `gorm:"not null;index:idx_watchlist_pair" json:"listing_id"`
	Listing   *Listing  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
	UserID    uint      `gorm:"not null;index:idx_watchlist_pair" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for WatchlistEntry model
func (WatchlistEntry) TableName() string {
	return "watchlist"
}
