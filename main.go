package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"auction-loader/internal/config"
	conversion "auction-loader/internal/conversionService"
	"auction-loader/internal/output"
	"auction-loader/internal/repository"
	"auction-loader/services/convert/handler"
	"auction-loader/services/convert/helpers"
	"auction-loader/utils"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, converts the listed sources and returns the exit code
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := config.NewFlagSet("auction-loader")
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: auction-loader [flags] <path to json files>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return helpers.ExitOK
		}
		return helpers.ExitUsage
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return helpers.ExitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return helpers.ExitUsage
	}
	if err := utils.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(stderr, "Failed to configure logging: %v\n", err)
		return helpers.ExitUsage
	}

	convertHandler := handler.NewConvertHandler(
		conversion.NewBatch(repository.NewMemoryRegistry(cfg.Policy())),
		buildSinks(cfg)...,
	)

	_, err = convertHandler.Run(ctx, paths)
	code, message := helpers.MapErrorToExitCode(err)
	if err != nil {
		utils.Error(message, map[string]any{"error": err.Error(), "exit_code": code})
	}
	return code
}

// buildSinks returns the .dat sink plus the SQLite sink when a database path is set
func buildSinks(cfg *config.Config) []output.Sink {
	sinks := []output.Sink{output.NewDatSink(cfg.Output.Folder)}
	if cfg.Output.SQLite != "" {
		sinks = append(sinks, output.NewSQLiteSink(cfg.Output.SQLite))
	}
	return sinks
}
