package tree

import (
	"github.com/hff-format/hff/section"
	"github.com/hff-format/hff/source"
)

// Flattened is the pre-order layout produced by Flatten: parallel table
// and chunk arrays, the data sources in the exact order their bytes must
// appear in the payload blob, and which tables carry a metadata entry.
//
// Tables and Chunks carry zeroed offset/length fields; the write package
// fills them in once every source's length is known, using HasMetadata to
// know which table consumed which entry from Sources.
type Flattened struct {
	Tables      []section.Table
	Chunks      []section.Chunk
	Sources     []source.DataSource
	HasMetadata []bool
}

// Flatten lays the forest of table builders out in pre-order: a table is
// emitted before its children, and all of a table's chunks are emitted
// contiguously, before its children are visited. SiblingStride is patched
// on the way back out of the recursion, once the table's children have
// returned and the full size of its subtree is known, since a table's
// stride must skip every descendant.
func Flatten(roots []*TableBuilder) Flattened {
	f := Flattened{}

	n := len(roots)
	for i, root := range roots {
		flattenOne(root, i < n-1, &f)
	}

	return f
}

func flattenOne(b *TableBuilder, hasSibling bool, f *Flattened) {
	hasMetadata := b.metadata != nil
	if hasMetadata {
		f.Sources = append(f.Sources, b.metadata)
	}

	chunkStart := len(f.Chunks)
	chunkCount := len(b.chunks)

	for _, c := range b.chunks {
		f.Chunks = append(f.Chunks, section.Chunk{Identifier: c.Identifier})
		f.Sources = append(f.Sources, c.Data)
	}

	tableIndex := len(f.Tables)

	var start uint32
	if chunkCount > 0 {
		start = uint32(chunkStart)
	}

	f.Tables = append(f.Tables, section.Table{
		Identifier: b.identifier,
		ChunkStart: start,
		ChunkCount: uint32(chunkCount),
		ChildCount: uint32(len(b.children)),
	})
	f.HasMetadata = append(f.HasMetadata, hasMetadata)

	childCount := len(b.children)
	for i, child := range b.children {
		flattenOne(child, i < childCount-1, f)
	}

	if hasSibling {
		f.Tables[tableIndex].SiblingStride = uint32(len(f.Tables) - tableIndex)
	}
}
