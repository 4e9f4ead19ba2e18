package output

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"auction-loader/internal/loadererrors"
	model "auction-loader/internal/models"
	"auction-loader/utils"
)

// DatSink writes Item.dat, Category.dat, User.dat and Bid.dat into a folder
type DatSink struct {
	folder string
}

// NewDatSink creates a sink writing into folder. An empty folder means the
// current working directory.
func NewDatSink(folder string) *DatSink {
	return &DatSink{folder: folder}
}

func (s *DatSink) Name() string {
	return "dat"
}

// Write replaces the four .dat files with the rendered tables
func (s *DatSink) Write(ctx context.Context, tables *model.Tables) error {
	if s.folder != "" {
		if err := os.MkdirAll(s.folder, 0o755); err != nil {
			return fmt.Errorf("dat sink: create folder %s: %w: %w", s.folder, loadererrors.ErrSink, err)
		}
	}

	for _, t := range Encode(tables) {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(s.folder, t.File)
		if err := writeLines(path, t.Lines); err != nil {
			return fmt.Errorf("dat sink: write %s: %w: %w", path, loadererrors.ErrSink, err)
		}
		utils.Debug("table written", map[string]any{"sink": s.Name(), "path": path, "rows": len(t.Lines)})
	}
	return nil
}

func writeLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return err
		}
	}
	return w.Flush()
}
