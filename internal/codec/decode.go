// Package codec decodes source documents and checks that every mandatory
// field is present before the records reach the projectors.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"auction-loader/internal/loadererrors"
	"auction-loader/internal/models"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

var validate = newValidator()

// Keys that must be spelled exactly. The decoder itself matches keys case-insensitively.
var (
	itemKeys   = []string{"ItemID", "Name", "Category", "Currently", "First_Bid", "Number_of_Bids", "Location", "Country", "Started", "Ends", "Seller"}
	sellerKeys = []string{"UserID", "Rating"}
	entryKeys  = []string{"Bid"}
	bidKeys    = []string{"Bidder", "Time", "Amount"}
	bidderKeys = []string{"UserID", "Rating"}
)

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON key so errors point at the source document
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses one source document.
// Malformed JSON or a missing Items collection wraps ErrInputFormat; an item
// lacking a mandatory field wraps ErrMissingField.
func Decode(data []byte) (*models.Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("codec: %w: %v", loadererrors.ErrInputFormat, err)
	}
	rawItems, ok := top["Items"]
	if !ok || isNull(rawItems) {
		return nil, fmt.Errorf("codec: %w: no Items collection", loadererrors.ErrInputFormat)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w: %v", loadererrors.ErrInputFormat, err)
	}
	if doc.Items == nil {
		return nil, fmt.Errorf("codec: %w: no Items collection", loadererrors.ErrInputFormat)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return nil, fmt.Errorf("codec: %w: %v", loadererrors.ErrInputFormat, err)
	}
	for i := range items {
		if err := checkItem(items[i], fmt.Sprintf("Items[%d]", i), &doc.Items[i]); err != nil {
			return nil, err
		}
	}

	if err := validate.Struct(&doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("codec: %w: %s", loadererrors.ErrMissingField, fieldPath(verrs[0]))
		}
		return nil, fmt.Errorf("codec: validate document: %w", err)
	}

	return &doc, nil
}

// checkItem enforces exact key spelling for one item. Optional values whose
// key only matched case-insensitively are dropped.
func checkItem(raw json.RawMessage, path string, item *models.Item) error {
	fields, err := requireKeys(raw, path, itemKeys)
	if err != nil {
		return err
	}

	if _, ok := fields["Buy_Price"]; !ok {
		item.BuyPrice = nil
	}
	if _, ok := fields["Description"]; !ok {
		item.Description = nil
	}

	if seller := fields["Seller"]; !isNull(seller) {
		if _, err := requireKeys(seller, path+".Seller", sellerKeys); err != nil {
			return err
		}
	}

	rawBids, ok := fields["Bids"]
	if !ok {
		item.Bids = nil
		return nil
	}
	if isNull(rawBids) {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rawBids, &entries); err != nil {
		return fmt.Errorf("codec: %w: %s.Bids: %v", loadererrors.ErrInputFormat, path, err)
	}
	for j, rawEntry := range entries {
		if j >= len(item.Bids) {
			break
		}
		entryPath := fmt.Sprintf("%s.Bids[%d]", path, j)
		entry, err := requireKeys(rawEntry, entryPath, entryKeys)
		if err != nil {
			return err
		}
		if isNull(entry["Bid"]) || item.Bids[j].Bid == nil {
			continue
		}

		bid, err := requireKeys(entry["Bid"], entryPath+".Bid", bidKeys)
		if err != nil {
			return err
		}
		if isNull(bid["Bidder"]) || item.Bids[j].Bid.Bidder == nil {
			continue
		}

		bidder, err := requireKeys(bid["Bidder"], entryPath+".Bid.Bidder", bidderKeys)
		if err != nil {
			return err
		}
		if _, ok := bidder["Location"]; !ok {
			item.Bids[j].Bid.Bidder.Location = nil
		}
		if _, ok := bidder["Country"]; !ok {
			item.Bids[j].Bid.Bidder.Country = nil
		}
	}
	return nil
}

// requireKeys decodes an object and fails on the first key not present verbatim
func requireKeys(raw json.RawMessage, path string, keys []string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("codec: %w: %s: %v", loadererrors.ErrInputFormat, path, err)
	}
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			return nil, fmt.Errorf("codec: %w: %s.%s", loadererrors.ErrMissingField, path, k)
		}
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// fieldPath drops the root type name, leaving e.g. "Items[3].Seller.UserID"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
