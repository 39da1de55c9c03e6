// Package format holds the small, dependency-free enums shared by the
// rest of the hff packages: the non-normative identifier interpretation
// hint carried in the file header, and the compression tag used to
// describe a Deferred data source's transform.
package format

// IDType is a hint for how consumers should interpret a table or chunk
// Identifier. It has no effect on core decoding: the header carries it,
// readers round-trip it, and nothing in section/tree/write/read ever
// branches on it. Only higher-level tooling (e.g. the CLI's dump
// subcommand) may choose to display identifiers differently based on it.
// Unknown values must be treated as Id by any tooling that reads this hint.
type IDType uint32

const (
	// Id interprets the 128-bit identifier as a plain unsigned integer.
	Id IDType = 0
	// Ecc2 interprets it as two concatenated 8-byte character codes.
	Ecc2 IDType = 1
	// Uuid interprets it as a standard UUID.
	Uuid IDType = 2
	// Scc interprets it as an opaque 16-byte array (a "sixteen character code").
	Scc IDType = 3
	// EccU64 interprets it as an 8-byte character code paired with a uint64.
	EccU64 IDType = 4
)

func (t IDType) String() string {
	switch t {
	case Id:
		return "Id"
	case Ecc2:
		return "Ecc2"
	case Uuid:
		return "Uuid"
	case Scc:
		return "Scc"
	case EccU64:
		return "EccU64"
	default:
		return "Id"
	}
}

// CompressionType tags the transform a Deferred data source applies before
// its bytes are written. It is not part of the on-disk format: HFF stores
// a compressed payload verbatim and has no record of which codec produced
// it, so this tag only exists to pick a Codec out of the compress package
// when building a Deferred source.
type CompressionType uint8

const (
	// CompressionNone performs no transform; Deferred behaves like Owned.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses with S2 (a Snappy derivative).
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses with LZ4.
	CompressionLZ4 CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
