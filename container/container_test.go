package container

import (
	"testing"

	"github.com/hff-format/hff/endian"
	"github.com/stretchr/testify/require"
)

func TestStringVector_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		v := StringVector{"alpha", "beta", "", "a longer entry with spaces"}

		got, err := DecodeStringVector(v.Encode(engine))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestStringVector_EmptyRoundTrip(t *testing.T) {
	v := StringVector{}

	got, err := DecodeStringVector(v.Encode(endian.GetLittleEndianEngine()))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStringVector_InvalidTagFails(t *testing.T) {
	_, err := DecodeStringVector([]byte("XXXXXXXX\x00\x00\x00\x00\x00\x00\x00\x00"))
	require.Error(t, err)
}

func TestStringMap_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		m := StringMap{
			{Key: "fruits", Values: StringVector{"apple", "pear"}},
			{Key: "empty", Values: StringVector{}},
		}

		got, err := DecodeStringMap(m.Encode(engine))
		require.NoError(t, err)
		require.Equal(t, m, got)

		values, ok := got.Get("fruits")
		require.True(t, ok)
		require.Equal(t, StringVector{"apple", "pear"}, values)

		_, ok = got.Get("missing")
		require.False(t, ok)
	}
}

func TestHierTree_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		tree := HierTree{
			Name:   "root",
			Values: StringVector{"r1"},
			Children: []HierTree{
				{Name: "child-a", Values: StringVector{"a1", "a2"}},
				{
					Name:   "child-b",
					Values: nil,
					Children: []HierTree{
						{Name: "grandchild", Values: StringVector{"g1"}},
					},
				},
			},
		}

		got, err := DecodeHierTree(tree.Encode(engine))
		require.NoError(t, err)
		require.Equal(t, tree.Name, got.Name)
		require.Equal(t, tree.Values, got.Values)
		require.Len(t, got.Children, 2)
		require.Equal(t, "child-a", got.Children[0].Name)
		require.Equal(t, StringVector{"a1", "a2"}, got.Children[0].Values)
		require.Equal(t, "grandchild", got.Children[1].Children[0].Name)
	}
}

func TestStringVector_NonUTF8Fails(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := tagStringVector.AppendTo(nil, engine)
	buf = engine.AppendUint64(buf, 1)
	buf = engine.AppendUint64(buf, 3)
	buf = append(buf, 0xff, 0xfe, 0xfd)

	_, err := DecodeStringVector(buf)
	require.Error(t, err)
}
