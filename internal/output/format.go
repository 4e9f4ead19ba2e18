// Package output renders the four tables and writes them to their destinations.
//
// Absent optional values reach this package as invalid sql.NullString values.
// The .dat encoding picks the textual placeholder per column: NULL for prices and
// user locations, the empty string for descriptions. The SQLite sink stores SQL NULL.
package output

import (
	"database/sql"
	"strings"

	model "auction-loader/internal/models"
)

const (
	delimiter  = "|"
	terminator = "\n"
	nullMarker = "NULL"
)

// Output file names, one per table
const (
	ItemFile     = "Item.dat"
	CategoryFile = "Category.dat"
	UserFile     = "User.dat"
	BidFile      = "Bid.dat"
)

// Quote wraps s in double quotes, doubling any double quote inside it
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatRow renders one line: every field quoted, joined by '|', newline-terminated
func FormatRow(fields ...string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(Quote(f))
	}
	b.WriteString(terminator)
	return b.String()
}

func orPlaceholder(v sql.NullString, placeholder string) string {
	if !v.Valid {
		return placeholder
	}
	return v.String
}

// ItemLine renders an Items row
func ItemLine(r model.ItemRow) string {
	return FormatRow(
		r.ItemID,
		r.Name,
		r.Currently,
		orPlaceholder(r.BuyPrice, nullMarker),
		r.FirstBid,
		r.NumberOfBids,
		r.Started,
		r.Ends,
		orPlaceholder(r.Description, ""),
		r.SellerID,
	)
}

// CategoryLine renders a Categories row
func CategoryLine(r model.CategoryRow) string {
	return FormatRow(r.ItemID, r.Category)
}

// UserLine renders a Users row
func UserLine(r model.UserRow) string {
	return FormatRow(
		r.UserID,
		r.Rating,
		orPlaceholder(r.Location, nullMarker),
		orPlaceholder(r.Country, nullMarker),
	)
}

// BidLine renders a Bids row
func BidLine(r model.BidRow) string {
	return FormatRow(r.ItemID, r.BidderID, r.Time, r.Amount)
}

// EncodedTable is one table rendered for its .dat file
type EncodedTable struct {
	File  string
	Lines []string
}

// Encode renders all four tables in the order Item, Category, User, Bid
func Encode(t *model.Tables) []EncodedTable {
	return []EncodedTable{
		{File: ItemFile, Lines: lines(t.Items, ItemLine)},
		{File: CategoryFile, Lines: lines(t.Categories, CategoryLine)},
		{File: UserFile, Lines: lines(t.Users, UserLine)},
		{File: BidFile, Lines: lines(t.Bids, BidLine)},
	}
}

func lines[T any](rows []T, render func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, render(r))
	}
	return out
}
