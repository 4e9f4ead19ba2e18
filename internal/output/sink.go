package output

import (
	"context"

	model "auction-loader/internal/models"
)

// Sink is a destination for the finished tables
type Sink interface {
	Name() string
	Write(ctx context.Context, tables *model.Tables) error
}
