package helpers

import (
	"errors"
	"io/fs"

	"auction-loader/internal/loadererrors"
	"auction-loader/utils"
)

// Process exit codes, following the sysexits convention
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitDataErr = 65
	ExitNoInput = 66
	ExitIOErr   = 74
)

// MapErrorToExitCode maps domain errors to a process exit code and message
func MapErrorToExitCode(err error) (int, string) {
	switch {
	case err == nil:
		return ExitOK, "conversion finished"
	case errors.Is(err, loadererrors.ErrUsage):
		return ExitUsage, "no input files supplied"
	case errors.Is(err, loadererrors.ErrInputFormat):
		return ExitDataErr, "invalid input document"
	case errors.Is(err, loadererrors.ErrMissingField):
		return ExitDataErr, "item is missing a required field"
	case errors.Is(err, loadererrors.ErrMalformedValue):
		return ExitDataErr, "item has a malformed field value"
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitNoInput, "input file cannot be opened"
	case errors.Is(err, loadererrors.ErrSink):
		return ExitIOErr, "writing output failed"
	default:
		return ExitFailure, "conversion failed"
	}
}

// LogSuccess is a small helper to standardize logging of successful steps
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
