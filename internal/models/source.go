package models

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Document is one source file: a JSON object holding the Items collection
type Document struct {
	Items []Item `json:"Items" validate:"dive"`
}

// Item represents an auction listing as it appears in a source document.
// Pointer fields distinguish an absent key or JSON null from an empty value.
type Item struct {
	ItemID       *string    `json:"ItemID" validate:"required"`
	Name         *string    `json:"Name" validate:"required"`
	Category     []string   `json:"Category" validate:"required"`
	Currently    *string    `json:"Currently" validate:"required"`
	BuyPrice     *string    `json:"Buy_Price"`
	FirstBid     *string    `json:"First_Bid" validate:"required"`
	NumberOfBids *Text      `json:"Number_of_Bids" validate:"required"`
	Bids         []BidEntry `json:"Bids" validate:"omitempty,dive"`
	Location     *string    `json:"Location" validate:"required"`
	Country      *string    `json:"Country" validate:"required"`
	Started      *string    `json:"Started" validate:"required"`
	Ends         *string    `json:"Ends" validate:"required"`
	Seller       *Seller    `json:"Seller" validate:"required"`
	Description  *string    `json:"Description"`
}

// Seller is the listing owner. Its location and country live on the Item.
type Seller struct {
	UserID *string `json:"UserID" validate:"required"`
	Rating *Text   `json:"Rating" validate:"required"`
}

// Bidder is a user who placed a bid
type Bidder struct {
	UserID   *string `json:"UserID" validate:"required"`
	Rating   *Text   `json:"Rating" validate:"required"`
	Location *string `json:"Location"`
	Country  *string `json:"Country"`
}

// BidEntry wraps a single bid the way the source export nests it
type BidEntry struct {
	Bid *Bid `json:"Bid" validate:"required"`
}

// Bid is one offer on an item
type Bid struct {
	Bidder *Bidder `json:"Bidder" validate:"required"`
	Time   *string `json:"Time" validate:"required"`
	Amount *string `json:"Amount" validate:"required"`
}

// Text is a scalar the source exports either as a JSON string or a bare number.
// Numbers keep their literal digits.
type Text string

// UnmarshalJSON accepts a string or a number
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	if len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) && json.Valid(data) {
		*t = Text(data)
		return nil
	}
	return fmt.Errorf("expected string or number, got %s", data)
}

// String returns the raw text
func (t Text) String() string {
	return string(t)
}
