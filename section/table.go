package section

import (
	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/identifier"
)

// Table is the fixed 48-byte record describing one node in the flattened,
// pre-order tree of tables.
//
//	offset  size  field
//	0       16    identifier
//	16      8     metadata length
//	24      8     metadata offset
//	32      4     child count
//	36      4     sibling stride
//	40      4     chunk start
//	44      4     chunk count
//
// ChildCount is the number of direct children only. SiblingStride is the
// distance, in table records, from this table to its next sibling (0 if
// this table has none); it is computed in a post-order pass after every
// descendant has already been laid out, since the stride must account for
// the full subtree rooted at each child. ChunkStart/ChunkCount locate this
// table's contiguous run in the chunk array.
type Table struct {
	Identifier     identifier.Identifier
	MetadataOffset uint64
	MetadataLength uint64
	ChildCount     uint32
	SiblingStride  uint32
	ChunkStart     uint32
	ChunkCount     uint32
}

// HasMetadata reports whether this table carries a metadata blob entry.
func (t Table) HasMetadata() bool {
	return t.MetadataLength > 0
}

// AppendTo encodes t and appends it to buf using engine.
func (t Table) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, t.Identifier.Hi())
	buf = engine.AppendUint64(buf, t.Identifier.Lo())
	buf = engine.AppendUint64(buf, t.MetadataLength)
	buf = engine.AppendUint64(buf, t.MetadataOffset)
	buf = engine.AppendUint32(buf, t.ChildCount)
	buf = engine.AppendUint32(buf, t.SiblingStride)
	buf = engine.AppendUint32(buf, t.ChunkStart)
	buf = engine.AppendUint32(buf, t.ChunkCount)

	return buf
}

// PutTo encodes t into the first TableSize bytes of b using engine.
func (t Table) PutTo(b []byte, engine endian.EndianEngine) {
	engine.PutUint64(b[0:8], t.Identifier.Hi())
	engine.PutUint64(b[8:16], t.Identifier.Lo())
	engine.PutUint64(b[16:24], t.MetadataLength)
	engine.PutUint64(b[24:32], t.MetadataOffset)
	engine.PutUint32(b[32:36], t.ChildCount)
	engine.PutUint32(b[36:40], t.SiblingStride)
	engine.PutUint32(b[40:44], t.ChunkStart)
	engine.PutUint32(b[44:48], t.ChunkCount)
}

// ReadTable decodes a Table from the first TableSize bytes of b.
func ReadTable(b []byte, engine endian.EndianEngine) Table {
	return Table{
		Identifier:     identifier.FromUint128(engine.Uint64(b[0:8]), engine.Uint64(b[8:16])),
		MetadataLength: engine.Uint64(b[16:24]),
		MetadataOffset: engine.Uint64(b[24:32]),
		ChildCount:     engine.Uint32(b[32:36]),
		SiblingStride:  engine.Uint32(b[36:40]),
		ChunkStart:     engine.Uint32(b[40:44]),
		ChunkCount:     engine.Uint32(b[44:48]),
	}
}
