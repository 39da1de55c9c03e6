// Package identifier implements the two primitive ID types the HFF format
// uses to name tables and chunks: Ecc, an 8-byte character code, and
// Identifier, the 128-bit value built from one or two Eccs (or a UUID, or
// a raw 16-byte array). See section.Header and section.Table for where
// these get serialized.
package identifier

import (
	"fmt"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
)

// Ecc is an 8-byte character code: a 64-bit value that typically holds up
// to eight ASCII characters, zero-padded. The all-zero value is reserved
// as the invalid/unused sentinel.
type Ecc uint64

// Invalid is the distinguished all-zero Ecc value.
const Invalid Ecc = 0

// Magic is the canonical magic value stamped into every HFF file header.
var Magic = MustEcc("HFF-2023")

// NewEcc builds an Ecc from at most 8 bytes of text, zero-padding any
// remainder. It returns ErrInvalidIdentifier for empty or over-long input.
func NewEcc(s string) (Ecc, error) {
	b := []byte(s)
	if len(b) == 0 || len(b) > 8 {
		return Invalid, fmt.Errorf("identifier: %q: %w", s, errs.ErrInvalidIdentifier)
	}

	var buf [8]byte
	copy(buf[:], b)

	return Ecc(endian.GetLittleEndianEngine().Uint64(buf[:])), nil
}

// MustEcc is like NewEcc but panics on error. Intended for package-level
// constants and tests where the input is a compile-time literal.
func MustEcc(s string) Ecc {
	e, err := NewEcc(s)
	if err != nil {
		panic(err)
	}

	return e
}

// IsValid reports whether e is not the invalid sentinel.
func (e Ecc) IsValid() bool {
	return e != Invalid
}

// SwapBytes returns e with its 8 bytes reversed.
func (e Ecc) SwapBytes() Ecc {
	v := uint64(e)
	v = (v&0x00000000FFFFFFFF)<<32 | (v&0xFFFFFFFF00000000)>>32
	v = (v&0x0000FFFF0000FFFF)<<16 | (v&0xFFFF0000FFFF0000)>>16
	v = (v&0x00FF00FF00FF00FF)<<8 | (v&0xFF00FF00FF00FF00)>>8

	return Ecc(v)
}

// Endianness is the outcome of comparing an observed Ecc against an
// expected canonical value.
type Endianness int

const (
	// Mismatch means the observed value is neither the expected value nor
	// its byte-swap.
	Mismatch Endianness = iota
	// SameEndian means the observed value equals the expected value bit
	// for bit.
	SameEndian
	// SwappedEndian means the observed value equals the byte-swap of the
	// expected value.
	SwappedEndian
)

// Endian compares e against want and reports whether they are
// endian-equivalent. This is the format's sole endian-detection
// mechanism: every other decision (table/chunk field order, counts)
// follows from this one comparison of the header's magic field.
func (e Ecc) Endian(want Ecc) Endianness {
	switch {
	case e == want:
		return SameEndian
	case e == want.SwapBytes():
		return SwappedEndian
	default:
		return Mismatch
	}
}

// ReadEcc reads a single Ecc from b (which must be at least 8 bytes) using
// the given byte order.
func ReadEcc(b []byte, engine endian.EndianEngine) Ecc {
	return Ecc(engine.Uint64(b))
}

// AppendTo appends e to buf in the given byte order and returns the
// extended slice.
func (e Ecc) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(buf, uint64(e))
}

// PutTo writes e into b (which must be at least 8 bytes) using the given
// byte order.
func (e Ecc) PutTo(b []byte, engine endian.EndianEngine) {
	engine.PutUint64(b, uint64(e))
}

// String renders the significant leading bytes of e as ASCII up to the
// first zero byte. A non-ASCII byte in that run forces a numeric fallback,
// and the invalid sentinel renders as "INVALID".
func (e Ecc) String() string {
	if !e.IsValid() {
		return "INVALID"
	}

	var buf [8]byte
	endian.GetLittleEndianEngine().PutUint64(buf[:], uint64(e))

	out := make([]byte, 0, 8)
	for _, b := range buf {
		if b == 0 {
			break
		}
		if b > 0x7F {
			return fmt.Sprintf("%d", uint64(e))
		}
		out = append(out, b)
	}

	return string(out)
}
