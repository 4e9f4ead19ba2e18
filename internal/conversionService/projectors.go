package conversion

import (
	"database/sql"
	"fmt"

	model "auction-loader/internal/models"
	"auction-loader/internal/repository"
	"auction-loader/internal/transform"
)

// ProjectItem builds the Items row for one listing
func ProjectItem(item model.Item) (model.ItemRow, error) {
	started, err := transform.NormalizeTimestamp(value(item.Started))
	if err != nil {
		return model.ItemRow{}, fmt.Errorf("Started: %w", err)
	}
	ends, err := transform.NormalizeTimestamp(value(item.Ends))
	if err != nil {
		return model.ItemRow{}, fmt.Errorf("Ends: %w", err)
	}

	var sellerID string
	if item.Seller != nil {
		sellerID = value(item.Seller.UserID)
	}

	return model.ItemRow{
		ItemID:       value(item.ItemID),
		Name:         value(item.Name),
		Currently:    transform.NormalizeCurrency(value(item.Currently)),
		BuyPrice:     optional(transform.NormalizeOptionalCurrency(item.BuyPrice)),
		FirstBid:     transform.NormalizeCurrency(value(item.FirstBid)),
		NumberOfBids: text(item.NumberOfBids),
		Started:      started,
		Ends:         ends,
		Description:  optional(item.Description),
		SellerID:     sellerID,
	}, nil
}

// ProjectCategories returns one row per distinct category of the listing,
// in order of first occurrence
func ProjectCategories(item model.Item) []model.CategoryRow {
	itemID := value(item.ItemID)
	seen := make(map[string]struct{}, len(item.Category))
	rows := make([]model.CategoryRow, 0, len(item.Category))
	for _, c := range item.Category {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		rows = append(rows, model.CategoryRow{ItemID: itemID, Category: c})
	}
	return rows
}

// ProjectUsers returns every user occurrence of the listing: the seller first,
// then each bidder in bid order. Deduplication is left to the registry.
func ProjectUsers(item model.Item) []repository.Candidate {
	out := make([]repository.Candidate, 0, 1+len(item.Bids))

	if item.Seller != nil {
		out = append(out, repository.Candidate{
			User: model.UserRow{
				UserID:   value(item.Seller.UserID),
				Rating:   text(item.Seller.Rating),
				Location: optional(item.Location),
				Country:  optional(item.Country),
			},
			Role: model.RoleSeller,
		})
	}

	for _, entry := range item.Bids {
		if entry.Bid == nil || entry.Bid.Bidder == nil {
			continue
		}
		bidder := entry.Bid.Bidder
		out = append(out, repository.Candidate{
			User: model.UserRow{
				UserID:   value(bidder.UserID),
				Rating:   text(bidder.Rating),
				Location: optional(bidder.Location),
				Country:  optional(bidder.Country),
			},
			Role: model.RoleBidder,
		})
	}

	return out
}

// ProjectBids returns one row per bid in source order. A listing without bids yields none.
func ProjectBids(item model.Item) ([]model.BidRow, error) {
	if len(item.Bids) == 0 {
		return nil, nil
	}

	itemID := value(item.ItemID)
	rows := make([]model.BidRow, 0, len(item.Bids))
	for i, entry := range item.Bids {
		if entry.Bid == nil {
			continue
		}
		bid := entry.Bid

		var bidderID string
		if bid.Bidder != nil {
			bidderID = value(bid.Bidder.UserID)
		}

		ts, err := transform.NormalizeTimestamp(value(bid.Time))
		if err != nil {
			return nil, fmt.Errorf("Bids[%d].Time: %w", i, err)
		}

		rows = append(rows, model.BidRow{
			ItemID:   itemID,
			BidderID: bidderID,
			Time:     ts,
			Amount:   transform.NormalizeCurrency(value(bid.Amount)),
		})
	}
	return rows, nil
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func text(p *model.Text) string {
	if p == nil {
		return ""
	}
	return p.String()
}

func optional(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
