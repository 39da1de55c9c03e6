package read

import "github.com/hff-format/hff/identifier"

// Locatable is anything that names a (offset, length) payload location
// within a Hff's blob: both TableView's metadata and ChunkView's data
// satisfy it, so Hff.Payload needs only one fetch routine for both.
type Locatable interface {
	Offset() uint64
	Length() uint64
}

// TableView projects one table record, bound to the Hff it came from.
type TableView struct {
	hff   *Hff
	index int
}

var _ Locatable = TableView{}

// Index is this view's position in the table array.
func (v TableView) Index() int { return v.index }

// Identifier is the table's identifier.
func (v TableView) Identifier() identifier.Identifier {
	return v.hff.tables[v.index].Identifier
}

// HasMetadata reports whether the table carries a metadata blob.
func (v TableView) HasMetadata() bool {
	return v.hff.tables[v.index].HasMetadata()
}

// Offset is the table's metadata offset, satisfying Locatable.
func (v TableView) Offset() uint64 { return v.hff.tables[v.index].MetadataOffset }

// Length is the table's metadata length, satisfying Locatable.
func (v TableView) Length() uint64 { return v.hff.tables[v.index].MetadataLength }

// ChildCount is the number of direct child tables.
func (v TableView) ChildCount() int { return int(v.hff.tables[v.index].ChildCount) }

// ChunkCount is the number of chunks attached to this table.
func (v TableView) ChunkCount() int { return int(v.hff.tables[v.index].ChunkCount) }

// Children iterates the table's direct children, if any.
func (v TableView) Children() TableIter {
	if v.ChildCount() == 0 {
		return newEmptyTableIter(v.hff)
	}

	return newTableIter(v.hff, v.index+1)
}

// Chunks iterates the table's attached chunks, in on-disk order.
func (v TableView) Chunks() ChunkIter {
	t := v.hff.tables[v.index]
	return newChunkIter(v.hff, int(t.ChunkStart), int(t.ChunkCount))
}

// ChunkView projects one chunk record, bound to the Hff it came from.
type ChunkView struct {
	hff   *Hff
	index int
}

var _ Locatable = ChunkView{}

// Index is this view's position in the chunk array.
func (v ChunkView) Index() int { return v.index }

// Identifier is the chunk's identifier.
func (v ChunkView) Identifier() identifier.Identifier {
	return v.hff.chunks[v.index].Identifier
}

// Offset is the chunk's payload offset, satisfying Locatable.
func (v ChunkView) Offset() uint64 { return v.hff.chunks[v.index].Offset }

// Length is the chunk's payload length, satisfying Locatable.
func (v ChunkView) Length() uint64 { return v.hff.chunks[v.index].Length }
