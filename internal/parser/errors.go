package parser

import "errors"

// Parse failures are terminal for the call: the engine never retries and
// never returns a partially parsed table alongside an error.
var (
	// ErrEmptyInput indicates the raw text was blank or whitespace-only.
	ErrEmptyInput = errors.New("input is empty")
	// ErrMalformedDialect indicates a tagged-table export without the
	// required sentinel + header + data lines.
	ErrMalformedDialect = errors.New("tagged table needs a sentinel, header and at least one data line")
	// ErrNoDataRows indicates a header was found but no rows followed, or
	// no row survived numeric coercion.
	ErrNoDataRows = errors.New("no usable data rows")
	// ErrUnresolvableColumns indicates the header row lacks a height
	// column plus at least one of volume/delivery.
	ErrUnresolvableColumns = errors.New("could not identify height and volume/delivery columns")
)
