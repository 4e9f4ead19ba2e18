package helpers

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"auction-loader/internal/loadererrors"

	"github.com/stretchr/testify/require"
)

func TestMapErrorToExitCode(t *testing.T) {
	t.Parallel()

	_, notExist := os.Open("/definitely/not/here.json")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "usage", err: loadererrors.ErrUsage, want: ExitUsage},
		{name: "input_format", err: fmt.Errorf("handler: a.json: %w", loadererrors.ErrInputFormat), want: ExitDataErr},
		{name: "missing_field", err: fmt.Errorf("codec: %w: Items[0].ItemID", loadererrors.ErrMissingField), want: ExitDataErr},
		{name: "malformed_value", err: fmt.Errorf("wrap: %w", loadererrors.ErrMalformedValue), want: ExitDataErr},
		{name: "missing_file", err: fmt.Errorf("handler: %w", notExist), want: ExitNoInput},
		{name: "sink", err: fmt.Errorf("dat sink: %w: disk full", loadererrors.ErrSink), want: ExitIOErr},
		{name: "other", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, msg := MapErrorToExitCode(tc.err)
			require.Equal(t, tc.want, code)
			require.NotEmpty(t, msg)
		})
	}
}
