package output

import (
	"context"
	"database/sql"
	"fmt"

	"auction-loader/internal/loadererrors"
	model "auction-loader/internal/models"
	"auction-loader/utils"

	_ "modernc.org/sqlite"
)

// schema recreates the four tables on every run
var schema = []string{
	`DROP TABLE IF EXISTS Items`,
	`DROP TABLE IF EXISTS Categories`,
	`DROP TABLE IF EXISTS Users`,
	`DROP TABLE IF EXISTS Bids`,
	`CREATE TABLE Items (
		ItemID TEXT,
		Name TEXT,
		Currently REAL,
		Buy_Price REAL,
		First_Bid REAL,
		Number_of_Bids INTEGER,
		Started TEXT,
		Ends TEXT,
		Description TEXT,
		SellerID TEXT
	)`,
	`CREATE TABLE Categories (ItemID TEXT, Category TEXT)`,
	`CREATE TABLE Users (UserID TEXT, Rating INTEGER, Location TEXT, Country TEXT)`,
	`CREATE TABLE Bids (ItemID TEXT, BidderID TEXT, Time TEXT, Amount REAL)`,
}

// SQLiteSink loads the tables into a SQLite database file
type SQLiteSink struct {
	path string
}

// NewSQLiteSink creates a sink for the database at path
func NewSQLiteSink(path string) *SQLiteSink {
	return &SQLiteSink{path: path}
}

func (s *SQLiteSink) Name() string {
	return "sqlite"
}

// Write replaces the four tables in one transaction
func (s *SQLiteSink) Write(ctx context.Context, tables *model.Tables) error {
	if err := s.write(ctx, tables); err != nil {
		return fmt.Errorf("sqlite sink: %s: %w: %w", s.path, loadererrors.ErrSink, err)
	}
	return nil
}

func (s *SQLiteSink) write(ctx context.Context, tables *model.Tables) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if err := insertAll(ctx, tx, `INSERT INTO Items VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, tables.Items,
		func(r model.ItemRow) []any {
			return []any{r.ItemID, r.Name, r.Currently, r.BuyPrice, r.FirstBid, r.NumberOfBids, r.Started, r.Ends, r.Description, r.SellerID}
		}); err != nil {
		return fmt.Errorf("insert Items: %w", err)
	}
	if err := insertAll(ctx, tx, `INSERT INTO Categories VALUES (?, ?)`, tables.Categories,
		func(r model.CategoryRow) []any {
			return []any{r.ItemID, r.Category}
		}); err != nil {
		return fmt.Errorf("insert Categories: %w", err)
	}
	if err := insertAll(ctx, tx, `INSERT INTO Users VALUES (?, ?, ?, ?)`, tables.Users,
		func(r model.UserRow) []any {
			return []any{r.UserID, r.Rating, r.Location, r.Country}
		}); err != nil {
		return fmt.Errorf("insert Users: %w", err)
	}
	if err := insertAll(ctx, tx, `INSERT INTO Bids VALUES (?, ?, ?, ?)`, tables.Bids,
		func(r model.BidRow) []any {
			return []any{r.ItemID, r.BidderID, r.Time, r.Amount}
		}); err != nil {
		return fmt.Errorf("insert Bids: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	utils.Debug("database loaded", map[string]any{
		"sink":       s.Name(),
		"path":       s.path,
		"items":      len(tables.Items),
		"categories": len(tables.Categories),
		"users":      len(tables.Users),
		"bids":       len(tables.Bids),
	})
	return nil
}

func insertAll[T any](ctx context.Context, tx *sql.Tx, query string, rows []T, args func(T) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, args(r)...); err != nil {
			return err
		}
	}
	return nil
}
