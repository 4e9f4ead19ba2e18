package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"auction-loader/internal/output"
	"auction-loader/services/convert/helpers"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `{"Items": [{"ItemID": "1", "Name": "lamp", "Category": ["Home"],
  "Currently": "$2.00", "First_Bid": "$1.00", "Number_of_Bids": "0",
  "Location": "Austin", "Country": "USA",
  "Started": "Dec-01-01 00:00:00", "Ends": "Dec-02-01 00:00:00",
  "Seller": {"UserID": "s1", "Rating": "10"}}]}`

func writeSource(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

// run touches the process-wide logger, so these cases stay sequential
func TestRun(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	valid := writeSource(t, dir, "valid.json", sampleDocument)
	broken := writeSource(t, dir, "broken.json", `{"Items": [ {"ItemID": "1"`)
	lowercase := writeSource(t, dir, "lowercase.json", `{"items": []}`)

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOutput string
		wantFile   string
	}{
		{
			name:       "no_args",
			args:       nil,
			wantCode:   helpers.ExitUsage,
			wantOutput: "Usage: auction-loader",
		},
		{
			name:       "help",
			args:       []string{"--help"},
			wantCode:   helpers.ExitOK,
			wantOutput: "Usage: auction-loader",
		},
		{
			name:     "unknown_flag",
			args:     []string{"--frobnicate", valid},
			wantCode: helpers.ExitUsage,
		},
		{
			name:       "bad_conflict_policy",
			args:       []string{"--conflict-policy", "merge", "-o", outDir, valid},
			wantCode:   helpers.ExitUsage,
			wantOutput: "unknown conflict policy",
		},
		{
			name:       "bad_log_level",
			args:       []string{"--log-level", "loud", "-o", outDir, valid},
			wantCode:   helpers.ExitUsage,
			wantOutput: "unknown log level",
		},
		{
			name:     "broken_document",
			args:     []string{"--log-level", "panic", "-o", outDir, broken},
			wantCode: helpers.ExitDataErr,
		},
		{
			name:     "miscased_items_key",
			args:     []string{"--log-level", "panic", "-o", outDir, lowercase},
			wantCode: helpers.ExitDataErr,
		},
		{
			name:     "missing_file",
			args:     []string{"--log-level", "panic", "-o", outDir, filepath.Join(dir, "absent.json")},
			wantCode: helpers.ExitNoInput,
		},
		{
			name:     "valid_document",
			args:     []string{"--log-level", "panic", "-o", outDir, valid},
			wantCode: helpers.ExitOK,
			wantFile: filepath.Join(outDir, output.ItemFile),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := run(context.Background(), tc.args, &stderr)

			require.Equal(t, tc.wantCode, code, stderr.String())
			if tc.wantOutput != "" {
				require.Contains(t, stderr.String(), tc.wantOutput)
			}
			if tc.wantFile != "" {
				data, err := os.ReadFile(tc.wantFile)
				require.NoError(t, err)
				require.Contains(t, string(data), `"1"|"lamp"|"2.00"|"NULL"|"1.00"|"0"|`)
			}
		})
	}
}
