// Package container implements small, self-contained utility formats that
// higher-level code may choose to store inside an HFF table's metadata
// blob: an ordered list of strings, a string-keyed map of such lists, and
// a recursive string tree. None of these are part of the core format —
// section, tree, write and read never import this package — but each
// follows the same self-describing convention the file header itself
// uses: a leading ECC tag whose byte order, once detected, governs every
// field that follows.
package container

import (
	"fmt"
	"unicode/utf8"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
	"github.com/hff-format/hff/identifier"
)

var (
	tagStringVector = identifier.MustEcc("SVEC")
	tagStringMap    = identifier.MustEcc("SMAP")
	tagHierTree     = identifier.MustEcc("HTRE")
)

// readTag reads an 8-byte ECC tag from the front of b, detects its byte
// order against want the same way section.ReadHeader detects the file
// magic's order, and returns the engine together with the remainder of b.
func readTag(b []byte, want identifier.Ecc) (endian.EndianEngine, []byte, error) {
	if len(b) < 8 {
		return nil, nil, fmt.Errorf("container: short read (%d bytes) for tag: %w", len(b), errs.ErrInvalidFormat)
	}

	little := endian.GetLittleEndianEngine()
	observed := identifier.ReadEcc(b[:8], little)

	var engine endian.EndianEngine
	switch observed.Endian(want) {
	case identifier.SameEndian:
		engine = little
	case identifier.SwappedEndian:
		engine = endian.GetBigEndianEngine()
	default:
		return nil, nil, fmt.Errorf("container: tag %q: %w", observed, errs.ErrInvalidMagic)
	}

	return engine, b[8:], nil
}

// appendString appends a u64 byte-length prefix followed by s's raw bytes.
// Entries are not padded: these are metadata-blob payloads, not top-level
// file sections, so the format's 16-byte alignment rule does not apply.
func appendString(buf []byte, engine endian.EndianEngine, s string) []byte {
	buf = engine.AppendUint64(buf, uint64(len(s)))
	return append(buf, s...)
}

// readString reads one appendString entry from the front of b, validating
// that its bytes are UTF-8, and returns the string together with the
// remainder of b.
func readString(b []byte, engine endian.EndianEngine) (string, []byte, error) {
	if len(b) < 8 {
		return "", nil, fmt.Errorf("container: short read (%d bytes) for string length: %w", len(b), errs.ErrInvalidFormat)
	}

	length := engine.Uint64(b[:8])
	b = b[8:]

	if uint64(len(b)) < length {
		return "", nil, fmt.Errorf("container: string length %d exceeds remaining %d bytes: %w", length, len(b), errs.ErrInvalidFormat)
	}

	raw := b[:length]
	if !utf8.Valid(raw) {
		return "", nil, fmt.Errorf("container: string body: %w", errs.ErrUtf8)
	}

	return string(raw), b[length:], nil
}
