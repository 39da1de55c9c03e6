package section

import (
	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/identifier"
)

// Chunk is the fixed 32-byte record describing one payload entry owned by
// a table.
//
//	offset  size  field
//	0       16    identifier
//	16      8     length
//	24      8     offset
//
// Offset/Length locate the chunk's bytes within the file's payload blob.
// Length is the logical (unpadded) size; every chunk's actual footprint in
// the blob is AlignUp(Length).
type Chunk struct {
	Identifier identifier.Identifier
	Offset     uint64
	Length     uint64
}

// AppendTo encodes c and appends it to buf using engine.
func (c Chunk) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, c.Identifier.Hi())
	buf = engine.AppendUint64(buf, c.Identifier.Lo())
	buf = engine.AppendUint64(buf, c.Length)
	buf = engine.AppendUint64(buf, c.Offset)

	return buf
}

// PutTo encodes c into the first ChunkSize bytes of b using engine.
func (c Chunk) PutTo(b []byte, engine endian.EndianEngine) {
	engine.PutUint64(b[0:8], c.Identifier.Hi())
	engine.PutUint64(b[8:16], c.Identifier.Lo())
	engine.PutUint64(b[16:24], c.Length)
	engine.PutUint64(b[24:32], c.Offset)
}

// ReadChunk decodes a Chunk from the first ChunkSize bytes of b.
func ReadChunk(b []byte, engine endian.EndianEngine) Chunk {
	return Chunk{
		Identifier: identifier.FromUint128(engine.Uint64(b[0:8]), engine.Uint64(b[8:16])),
		Length:     engine.Uint64(b[16:24]),
		Offset:     engine.Uint64(b[24:32]),
	}
}
