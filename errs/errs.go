// Package errs defines the closed error taxonomy shared by every hff
// package. Sentinel errors are wrapped with fmt.Errorf's %w so callers
// can still use errors.Is against the sentinels below after the error
// has picked up file/offset context on its way up the call stack.
package errs

import "errors"

var (
	// ErrInvalidMagic means the first 8 bytes of a header matched neither
	// the canonical magic nor its byte-swap.
	ErrInvalidMagic = errors.New("hff: invalid magic")

	// ErrInvalidFormat means a header's version did not match the
	// library's compile-time format version after endian normalization,
	// or a structural field failed a bounds check while reading.
	ErrInvalidFormat = errors.New("hff: invalid format")

	// ErrNotFound means a requested named entity does not exist. Used by
	// tooling built on the core, not by the core itself.
	ErrNotFound = errors.New("hff: not found")

	// ErrUtf8 means a byte range expected to hold UTF-8 text did not.
	// Surfaces only when interpreting metadata through the container
	// package's utility formats.
	ErrUtf8 = errors.New("hff: invalid utf-8")

	// ErrInvalidIdentifier means input could not be represented as an
	// Ecc: it was empty or longer than 8 bytes.
	ErrInvalidIdentifier = errors.New("hff: invalid identifier")

	// ErrDuplicateMetadata means a TableBuilder received a second
	// metadata assignment for the same table.
	ErrDuplicateMetadata = errors.New("hff: duplicate metadata")

	// ErrInvalidTableData means a table descriptor referenced a data
	// source that failed preparation.
	ErrInvalidTableData = errors.New("hff: invalid table data")

	// ErrPathPrefix means a path could not be made relative to the
	// expected prefix. Used only by cmd/hff's unpack path handling.
	ErrPathPrefix = errors.New("hff: path prefix error")

	// ErrNoPayloadSource means a payload fetch was attempted on a reader
	// opened in inspection-only mode.
	ErrNoPayloadSource = errors.New("hff: no payload source")
)
