package integrationtests

import (
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"auction-loader/internal/loadererrors"
	"auction-loader/internal/output"
	"auction-loader/internal/repository"

	"github.com/stretchr/testify/require"
)

const wantItems = `"1043374545"|"christopher radko | fritz ""n"" frosty"|"30.00"|"NULL"|"30.00"|"1"|"2001-12-03 18:10:40"|"2001-12-13 18:10:40"|"Fritz ""n"" Frosty sledding"|"rulabula"
"1045769659"|"Gap Kids Fleece"|"1.00"|"1200.00"|"1.00"|"0"|"2001-12-05 01:02:03"|"2001-12-15 01:02:03"|""|"sodbuster"
"1046315047"|"Antique Clock"|"3453.23"|"NULL"|"2000.00"|"2"|"2001-12-01 09:00:00"|"2001-12-11 09:00:00"|""|"mr-fixit"
`

const wantCategories = `"1043374545"|"Collectibles"
"1043374545"|"Decorative & Holiday"
"1045769659"|"Books"
"1046315047"|"Home & Garden"
`

const wantUsers = `"rulabula"|"1035"|"Bell Canyon, CA"|"USA"
"sodbuster"|"3"|"Kansas"|"USA"
"mr-fixit"|"250"|"Chicago"|"USA"
"newbie"|"0"|"NULL"|"NULL"
`

const wantBids = `"1043374545"|"sodbuster"|"2001-12-04 04:03:46"|"30.00"
"1046315047"|"rulabula"|"2001-12-10 10:30:00"|"3453.23"
"1046315047"|"newbie"|"2001-12-09 08:00:00"|"2000.00"
`

func TestConvert_FullRun(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	h := SetupTestHandler(folder, "", nil)

	tables, err := h.Run(context.Background(), []string{
		testdataPath("items-a.json"),
		testdataPath("notes.txt"),
		testdataPath("items-b.json"),
	})
	require.NoError(t, err)
	require.Len(t, tables.Items, 3)

	require.Equal(t, wantItems, ReadOutput(t, folder, output.ItemFile))
	require.Equal(t, wantCategories, ReadOutput(t, folder, output.CategoryFile))
	require.Equal(t, wantUsers, ReadOutput(t, folder, output.UserFile))
	require.Equal(t, wantBids, ReadOutput(t, folder, output.BidFile))
}

// every .dat file parses as '|'-separated quoted fields with a fixed column count
func TestConvert_OutputIsWellFormed(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	_, err := SetupTestHandler(folder, "", nil).Run(context.Background(), []string{
		testdataPath("items-a.json"),
		testdataPath("items-b.json"),
	})
	require.NoError(t, err)

	columns := map[string]int{output.ItemFile: 10, output.CategoryFile: 2, output.UserFile: 4, output.BidFile: 4}
	for file, n := range columns {
		r := csv.NewReader(strings.NewReader(ReadOutput(t, folder, file)))
		r.Comma = '|'
		r.FieldsPerRecord = n
		records, err := r.ReadAll()
		require.NoError(t, err, file)
		require.NotEmpty(t, records, file)

		if file == output.UserFile {
			seen := make(map[string]bool)
			for _, rec := range records {
				require.False(t, seen[rec[0]], "duplicate user %s", rec[0])
				seen[rec[0]] = true
			}
		}
		if file == output.CategoryFile {
			seen := make(map[[2]string]bool)
			for _, rec := range records {
				key := [2]string{rec[0], rec[1]}
				require.False(t, seen[key], "duplicate category row %v", key)
				seen[key] = true
			}
		}
	}
}

// the same input in reverse file order changes which user occurrence wins
func TestConvert_FileOrderDecidesUserWinner(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	_, err := SetupTestHandler(folder, "", nil).Run(context.Background(), []string{
		testdataPath("items-b.json"),
		testdataPath("items-a.json"),
	})
	require.NoError(t, err)

	users := ReadOutput(t, folder, output.UserFile)
	require.Equal(t, `"mr-fixit"|"250"|"Chicago"|"USA"
"rulabula"|"1035"|"NULL"|"NULL"
"newbie"|"0"|"NULL"|"NULL"
"sodbuster"|"3"|"Kansas"|"USA"
`, users)
}

func TestConvert_PreferSellerPolicy(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	_, err := SetupTestHandler(folder, "", repository.PreferSeller{}).Run(context.Background(), []string{
		testdataPath("items-a.json"),
		testdataPath("items-b.json"),
	})
	require.NoError(t, err)

	require.Equal(t, `"rulabula"|"1035"|"Bell Canyon, CA"|"USA"
"sodbuster"|"3"|"Dallas, TX"|"USA"
"mr-fixit"|"250"|"Chicago"|"USA"
"newbie"|"0"|"NULL"|"NULL"
`, ReadOutput(t, folder, output.UserFile))
}

func TestConvert_ErrorsAbortWithoutOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		paths   []string
		wantErr error
	}{
		{name: "malformed_json", paths: []string{testdataPath("items-a.json"), testdataPath("broken.json"), testdataPath("items-b.json")}, wantErr: loadererrors.ErrInputFormat},
		{name: "missing_item_id", paths: []string{testdataPath("missing-id.json")}, wantErr: loadererrors.ErrMissingField},
		{name: "no_inputs", paths: nil, wantErr: loadererrors.ErrUsage},
		{name: "missing_file", paths: []string{testdataPath("absent.json")}, wantErr: os.ErrNotExist},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			folder := t.TempDir()
			_, err := SetupTestHandler(folder, "", nil).Run(context.Background(), tc.paths)
			require.ErrorIs(t, err, tc.wantErr)

			entries, err := os.ReadDir(folder)
			require.NoError(t, err)
			require.Empty(t, entries)
		})
	}
}

func TestConvert_SQLiteLoad(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	dbPath := filepath.Join(folder, "auction.db")

	_, err := SetupTestHandler(folder, dbPath, nil).Run(context.Background(), []string{
		testdataPath("items-a.json"),
		testdataPath("items-b.json"),
	})
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var users, bids int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Users`).Scan(&users))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Bids`).Scan(&bids))
	require.Equal(t, 4, users)
	require.Equal(t, 3, bids)

	// highest bid per item, the kind of query the tables are loaded for
	var itemID string
	var amount float64
	require.NoError(t, db.QueryRow(`SELECT ItemID, MAX(Amount) FROM Bids GROUP BY ItemID ORDER BY MAX(Amount) DESC LIMIT 1`).
		Scan(&itemID, &amount))
	require.Equal(t, "1046315047", itemID)
	require.InDelta(t, 3453.23, amount, 1e-9)

	var description sql.NullString
	require.NoError(t, db.QueryRow(`SELECT Description FROM Items WHERE ItemID = '1045769659'`).Scan(&description))
	require.False(t, description.Valid)
}
