package section

import (
	"testing"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/identifier"
	"github.com/stretchr/testify/require"
)

func TestTable_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		tbl := Table{
			Identifier:     identifier.FromEccPair(identifier.MustEcc("root"), identifier.MustEcc("node")),
			MetadataOffset: 128,
			MetadataLength: 64,
			ChildCount:     2,
			SiblingStride:  5,
			ChunkStart:     3,
			ChunkCount:     4,
		}

		buf := tbl.AppendTo(nil, engine)
		require.Len(t, buf, TableSize)

		got := ReadTable(buf, engine)
		require.Equal(t, tbl, got)

		buf2 := make([]byte, TableSize)
		tbl.PutTo(buf2, engine)
		require.Equal(t, buf, buf2)
	}
}

func TestTable_HasMetadata(t *testing.T) {
	require.False(t, Table{}.HasMetadata())
	require.True(t, Table{MetadataLength: 1}.HasMetadata())
}
