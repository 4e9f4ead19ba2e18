package handler

import (
	"context"
	"fmt"
	"os"

	"auction-loader/internal/loadererrors"
	model "auction-loader/internal/models"
	"auction-loader/internal/output"
	"auction-loader/internal/transform"
	"auction-loader/services/convert/helpers"
	"auction-loader/utils"
)

type ConversionServiceInterface interface {
	AddDocument(data []byte) (int, error)
	Tables() *model.Tables
}

type ConvertHandler struct {
	service ConversionServiceInterface
	sinks   []output.Sink
}

func NewConvertHandler(service ConversionServiceInterface, sinks ...output.Sink) *ConvertHandler {
	return &ConvertHandler{service: service, sinks: sinks}
}

// Run converts every .json path in the order given, then writes the tables to
// each sink. Paths without the .json suffix are skipped. The first error aborts
// the run before any sink is written.
func (h *ConvertHandler) Run(ctx context.Context, paths []string) (*model.Tables, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("handler: %w", loadererrors.ErrUsage)
	}

	runID := utils.GenerateID()
	sources := 0

	for _, path := range paths {
		if !transform.IsJSONSource(path) {
			utils.Debug("Run: skipping non-json source", map[string]any{"run_id": runID, "file": path})
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("handler: failed to read %s: %w", path, err)
		}

		items, err := h.service.AddDocument(data)
		if err != nil {
			utils.Error("Run: failed to parse source", map[string]any{
				"run_id": runID,
				"file":   path,
				"error":  err.Error(),
			})
			return nil, fmt.Errorf("handler: %s: %w", path, err)
		}

		sources++
		helpers.LogSuccess("Run", "source parsed", map[string]any{"run_id": runID, "file": path, "items": items})
	}

	if sources == 0 {
		utils.Warn("Run: no .json sources among the inputs", map[string]any{"run_id": runID, "inputs": len(paths)})
	}

	tables := h.service.Tables()
	for _, sink := range h.sinks {
		if err := sink.Write(ctx, tables); err != nil {
			utils.Error("Run: failed to write output", map[string]any{
				"run_id": runID,
				"sink":   sink.Name(),
				"error":  err.Error(),
			})
			return nil, fmt.Errorf("handler: %w", err)
		}
		helpers.LogSuccess("Run", "tables written", map[string]any{
			"run_id":     runID,
			"sink":       sink.Name(),
			"items":      len(tables.Items),
			"categories": len(tables.Categories),
			"users":      len(tables.Users),
			"bids":       len(tables.Bids),
		})
	}

	return tables, nil
}
