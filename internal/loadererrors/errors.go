package loadererrors

import "errors"

// Invocation errors
var (
	ErrUsage = errors.New("no input files supplied")
)

// Source document errors
var (
	ErrInputFormat    = errors.New("invalid input document")
	ErrMissingField   = errors.New("missing required field")
	ErrMalformedValue = errors.New("malformed field value")
)

// Output errors
var (
	ErrSink = errors.New("write output failed")
)
