package models

import "database/sql"

// Role is the capacity in which a user appears in a listing
type Role int

const (
	RoleSeller Role = iota + 1
	RoleBidder
)

func (r Role) String() string {
	switch r {
	case RoleSeller:
		return "seller"
	case RoleBidder:
		return "bidder"
	default:
		return "unknown"
	}
}

// ItemRow is one row of the Items table
type ItemRow struct {
	ItemID       string
	Name         string
	Currently    string
	BuyPrice     sql.NullString
	FirstBid     string
	NumberOfBids string
	Started      string
	Ends         string
	Description  sql.NullString
	SellerID     string
}

// CategoryRow is one row of the Categories table
type CategoryRow struct {
	ItemID   string
	Category string
}

// UserRow is one row of the Users table
type UserRow struct {
	UserID   string
	Rating   string
	Location sql.NullString
	Country  sql.NullString
}

// BidRow is one row of the Bids table
type BidRow struct {
	ItemID   string
	BidderID string
	Time     string
	Amount   string
}

// Tables holds the four output row sets in emission order
type Tables struct {
	Items      []ItemRow
	Categories []CategoryRow
	Users      []UserRow
	Bids       []BidRow
}
