// Package tree provides a fluent builder for describing a tree of tables,
// chunks and their data sources, and the flattening step that turns that
// tree into the pre-order table/chunk arrays the write package serializes.
package tree

import (
	"fmt"

	"github.com/hff-format/hff/errs"
	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/source"
)

// ChunkDesc describes one chunk attached to a table: its identifier and
// the data source that will supply its bytes.
type ChunkDesc struct {
	Identifier identifier.Identifier
	Data       source.DataSource
}

// Chunk builds a ChunkDesc.
func Chunk(id identifier.Identifier, data source.DataSource) ChunkDesc {
	return ChunkDesc{Identifier: id, Data: data}
}

// TableBuilder fluently describes one table: its identifier, optional
// metadata blob, attached chunks, and child tables. Method calls mutate
// and return the same builder so they can be chained.
type TableBuilder struct {
	identifier identifier.Identifier
	metadata   source.DataSource
	chunks     []ChunkDesc
	children   []*TableBuilder
	err        error
}

// Table starts a new table description for id.
func Table(id identifier.Identifier) *TableBuilder {
	return &TableBuilder{identifier: id}
}

// Metadata attaches a data source as this table's metadata blob. At most
// one metadata blob is allowed per table; a second call is ignored and
// recorded as errs.ErrDuplicateMetadata, surfaced when the forest is
// finally assembled by Hff.
func (b *TableBuilder) Metadata(data source.DataSource) *TableBuilder {
	if b.metadata != nil {
		if b.err == nil {
			b.err = fmt.Errorf("tree: table already has metadata: %w", errs.ErrDuplicateMetadata)
		}

		return b
	}

	b.metadata = data

	return b
}

// Chunks appends chunks to this table, in the order given.
func (b *TableBuilder) Chunks(chunks ...ChunkDesc) *TableBuilder {
	b.chunks = append(b.chunks, chunks...)
	return b
}

// Children appends child tables, in pre-order traversal order.
func (b *TableBuilder) Children(children ...*TableBuilder) *TableBuilder {
	b.children = append(b.children, children...)
	return b
}

// firstErr returns the first error recorded anywhere in b's subtree, in
// pre-order, or nil if none was recorded.
func firstErr(b *TableBuilder) error {
	if b.err != nil {
		return b.err
	}

	for _, child := range b.children {
		if err := firstErr(child); err != nil {
			return err
		}
	}

	return nil
}

// HffDescriptor is the flattened, ready-to-serialize form of a forest of
// TableBuilders, produced by Hff. It is what write.Write and
// write.LazyWrite consume.
type HffDescriptor struct {
	Flattened Flattened
}

// Hff assembles roots into an HffDescriptor by flattening them in
// pre-order, failing with errs.ErrDuplicateMetadata if any table in the
// forest received a second Metadata call.
func Hff(roots ...*TableBuilder) (HffDescriptor, error) {
	for _, root := range roots {
		if err := firstErr(root); err != nil {
			return HffDescriptor{}, err
		}
	}

	return HffDescriptor{Flattened: Flatten(roots)}, nil
}
