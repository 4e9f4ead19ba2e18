package conversion

import (
	"fmt"

	"auction-loader/internal/codec"
	model "auction-loader/internal/models"
	"auction-loader/internal/repository"
	"auction-loader/utils"
)

// Batch holds the state of one conversion run: the Items, Categories and Bids
// accumulators plus the user registry that backs the Users table
type Batch struct {
	registry   repository.UserRegistry
	items      []model.ItemRow
	categories []model.CategoryRow
	bids       []model.BidRow
}

// NewBatch creates an empty Batch that deduplicates users through registry
func NewBatch(registry repository.UserRegistry) *Batch {
	return &Batch{
		registry: registry,
	}
}

// AddDocument decodes one source document and adds every item in document order.
// It returns the number of items added.
func (b *Batch) AddDocument(data []byte) (int, error) {
	doc, err := codec.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("service: failed to decode document: %w", err)
	}

	for i, item := range doc.Items {
		if err := b.AddItem(item); err != nil {
			return i, err
		}
	}
	return len(doc.Items), nil
}

// AddItem runs the Item, Category, User and Bid projectors for one listing.
// Rows are only appended once every projector succeeded.
func (b *Batch) AddItem(item model.Item) error {
	itemRow, err := ProjectItem(item)
	if err != nil {
		return fmt.Errorf("service: failed to project item %s: %w", value(item.ItemID), err)
	}
	bidRows, err := ProjectBids(item)
	if err != nil {
		return fmt.Errorf("service: failed to project bids for item %s: %w", value(item.ItemID), err)
	}

	b.items = append(b.items, itemRow)
	b.categories = append(b.categories, ProjectCategories(item)...)
	for _, c := range ProjectUsers(item) {
		if !b.registry.Claim(c.User, c.Role) {
			utils.Debug("AddItem: user already registered", map[string]any{
				"item_id": itemRow.ItemID,
				"user_id": c.User.UserID,
				"role":    c.Role.String(),
			})
		}
	}
	b.bids = append(b.bids, bidRows...)

	return nil
}

// Tables returns a snapshot of the four output tables
func (b *Batch) Tables() *model.Tables {
	return &model.Tables{
		Items:      append([]model.ItemRow(nil), b.items...),
		Categories: append([]model.CategoryRow(nil), b.categories...),
		Users:      b.registry.Users(),
		Bids:       append([]model.BidRow(nil), b.bids...),
	}
}
