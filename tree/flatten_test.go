package tree

import (
	"testing"

	"github.com/hff-format/hff/source"
	"github.com/stretchr/testify/require"
)

func TestFlatten_PreOrderAndSiblingStride(t *testing.T) {
	d := Table(id("D"))
	b := Table(id("B")).Children(d)
	c := Table(id("C"))
	a := Table(id("A")).Children(b, c)

	f := Flatten([]*TableBuilder{a})

	require.Len(t, f.Tables, 4)

	names := make([]string, len(f.Tables))
	for i, tbl := range f.Tables {
		primary, _ := tbl.Identifier.AsEccPair()
		names[i] = primary.String()
	}
	require.Equal(t, []string{"A", "B", "D", "C"}, names)

	require.Equal(t, uint32(0), f.Tables[0].SiblingStride) // A: only root
	require.Equal(t, uint32(2), f.Tables[1].SiblingStride) // B: sibling C is 2 away
	require.Equal(t, uint32(0), f.Tables[2].SiblingStride) // D: no sibling
	require.Equal(t, uint32(0), f.Tables[3].SiblingStride) // C: no sibling

	require.Equal(t, uint32(2), f.Tables[0].ChildCount) // A has B, C
	require.Equal(t, uint32(1), f.Tables[1].ChildCount) // B has D
	require.Equal(t, uint32(0), f.Tables[2].ChildCount)
	require.Equal(t, uint32(0), f.Tables[3].ChildCount)
}

func TestFlatten_MultipleRootsGetSiblingStride(t *testing.T) {
	first := Table(id("first"))
	second := Table(id("second"))

	f := Flatten([]*TableBuilder{first, second})

	require.Len(t, f.Tables, 2)
	require.Equal(t, uint32(1), f.Tables[0].SiblingStride)
	require.Equal(t, uint32(0), f.Tables[1].SiblingStride)
}

func TestFlatten_ChunksAreContiguousPerTable(t *testing.T) {
	root := Table(id("root")).Chunks(
		Chunk(id("c1"), source.NewOwned([]byte("one"))),
		Chunk(id("c2"), source.NewOwned([]byte("two"))),
	)

	f := Flatten([]*TableBuilder{root})

	require.Len(t, f.Chunks, 2)
	require.Equal(t, uint32(0), f.Tables[0].ChunkStart)
	require.Equal(t, uint32(2), f.Tables[0].ChunkCount)
}

func TestFlatten_MetadataTracksSourceOrder(t *testing.T) {
	root := Table(id("root")).
		Metadata(source.NewOwned([]byte("meta"))).
		Chunks(Chunk(id("c1"), source.NewOwned([]byte("chunk"))))

	f := Flatten([]*TableBuilder{root})

	require.Len(t, f.Sources, 2) // metadata first, then the chunk
	require.True(t, f.HasMetadata[0])
}

func TestFlatten_NoMetadataNoSourceEntry(t *testing.T) {
	root := Table(id("root")).
		Chunks(Chunk(id("c1"), source.NewOwned([]byte("chunk"))))

	f := Flatten([]*TableBuilder{root})

	require.Len(t, f.Sources, 1)
	require.False(t, f.HasMetadata[0])
}

func TestFlatten_EmptyForest(t *testing.T) {
	f := Flatten(nil)

	require.Empty(t, f.Tables)
	require.Empty(t, f.Chunks)
	require.Empty(t, f.Sources)
}
