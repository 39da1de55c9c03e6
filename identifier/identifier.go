package identifier

import (
	"github.com/google/uuid"
)

// Identifier is a 128-bit value used to name both tables and chunks. Its
// declared "interpretation" (format.IDType) is a hint only: the core never
// branches on it, and every conversion below is a total, zero-cost bit
// reinterpretation. The high 64 bits hold what a caller would think of as
// the "primary" half (e.g. the first Ecc of an Ecc2 pair); the low 64 bits
// hold the "secondary" half.
type Identifier struct {
	hi uint64
	lo uint64
}

// InvalidID is the distinguished zero Identifier.
var InvalidID = Identifier{}

// FromUint128 builds an Identifier directly from its high/low 64-bit halves,
// i.e. the IDType.Id interpretation (a plain 128-bit integer).
func FromUint128(hi, lo uint64) Identifier {
	return Identifier{hi: hi, lo: lo}
}

// FromEccPair builds an Identifier from two Eccs, i.e. the IDType.Ecc2
// interpretation.
func FromEccPair(primary, secondary Ecc) Identifier {
	return Identifier{hi: uint64(primary), lo: uint64(secondary)}
}

// FromEcc builds an Identifier from a single Ecc placed in the primary
// half, leaving the secondary half zero. Convenience for callers that
// name things with one code rather than a pair.
func FromEcc(primary Ecc) Identifier {
	return Identifier{hi: uint64(primary)}
}

// FromEccUint64 builds an Identifier from an Ecc and a uint64, i.e. the
// IDType.EccU64 interpretation.
func FromEccUint64(primary Ecc, secondary uint64) Identifier {
	return Identifier{hi: uint64(primary), lo: secondary}
}

// FromUUID builds an Identifier from a UUID, i.e. the IDType.Uuid
// interpretation.
func FromUUID(id uuid.UUID) Identifier {
	return Identifier{
		hi: uint64(id[0])<<56 | uint64(id[1])<<48 | uint64(id[2])<<40 | uint64(id[3])<<32 |
			uint64(id[4])<<24 | uint64(id[5])<<16 | uint64(id[6])<<8 | uint64(id[7]),
		lo: uint64(id[8])<<56 | uint64(id[9])<<48 | uint64(id[10])<<40 | uint64(id[11])<<32 |
			uint64(id[12])<<24 | uint64(id[13])<<16 | uint64(id[14])<<8 | uint64(id[15]),
	}
}

// FromBytes16 builds an Identifier from a raw 16-byte array, i.e. the
// IDType.Scc interpretation. The mapping is fixed on every host: bytes 0-7
// form the high half and bytes 8-15 the low half, each read least
// significant byte first.
func FromBytes16(b [16]byte) Identifier {
	return Identifier{
		hi: uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56,
		lo: uint64(b[8]) | uint64(b[9])<<8 | uint64(b[10])<<16 | uint64(b[11])<<24 |
			uint64(b[12])<<32 | uint64(b[13])<<40 | uint64(b[14])<<48 | uint64(b[15])<<56,
	}
}

// Hi returns the high 64 bits of the identifier.
func (id Identifier) Hi() uint64 { return id.hi }

// Lo returns the low 64 bits of the identifier.
func (id Identifier) Lo() uint64 { return id.lo }

// IsValid reports whether id is not the zero/invalid identifier.
func (id Identifier) IsValid() bool {
	return id != InvalidID
}

// AsEccPair returns the high and low halves reinterpreted as a pair of
// Eccs, i.e. the IDType.Ecc2 view.
func (id Identifier) AsEccPair() (primary, secondary Ecc) {
	return Ecc(id.hi), Ecc(id.lo)
}

// AsEccUint64 returns the high half as an Ecc and the low half as a
// uint64, i.e. the IDType.EccU64 view.
func (id Identifier) AsEccUint64() (primary Ecc, secondary uint64) {
	return Ecc(id.hi), id.lo
}

// AsUUID returns the identifier reinterpreted as a UUID, i.e. the
// IDType.Uuid view.
func (id Identifier) AsUUID() uuid.UUID {
	var b [16]byte
	b[0], b[1], b[2], b[3] = byte(id.hi>>56), byte(id.hi>>48), byte(id.hi>>40), byte(id.hi>>32)
	b[4], b[5], b[6], b[7] = byte(id.hi>>24), byte(id.hi>>16), byte(id.hi>>8), byte(id.hi)
	b[8], b[9], b[10], b[11] = byte(id.lo>>56), byte(id.lo>>48), byte(id.lo>>40), byte(id.lo>>32)
	b[12], b[13], b[14], b[15] = byte(id.lo>>24), byte(id.lo>>16), byte(id.lo>>8), byte(id.lo)

	return uuid.UUID(b)
}

// AsBytes16 returns the identifier reinterpreted as a raw 16-byte array,
// i.e. the IDType.Scc view, using the same fixed mapping as FromBytes16.
func (id Identifier) AsBytes16() [16]byte {
	var b [16]byte
	b[0], b[1], b[2], b[3] = byte(id.hi), byte(id.hi>>8), byte(id.hi>>16), byte(id.hi>>24)
	b[4], b[5], b[6], b[7] = byte(id.hi>>32), byte(id.hi>>40), byte(id.hi>>48), byte(id.hi>>56)
	b[8], b[9], b[10], b[11] = byte(id.lo), byte(id.lo>>8), byte(id.lo>>16), byte(id.lo>>24)
	b[12], b[13], b[14], b[15] = byte(id.lo>>32), byte(id.lo>>40), byte(id.lo>>48), byte(id.lo>>56)

	return b
}
