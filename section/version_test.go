package section

import (
	"testing"

	"github.com/hff-format/hff/endian"
	"github.com/stretchr/testify/require"
)

func TestVersion_Matches(t *testing.T) {
	v1 := Version{Major: 1, Minor: 0}
	v1Same := Version{Major: 1, Minor: 0}
	v2 := Version{Major: 1, Minor: 5}
	v3 := Version{Major: 2, Minor: 0}

	require.True(t, v1.Matches(v1Same))
	require.False(t, v1.Matches(v2))
	require.False(t, v1.Matches(v3))
}

func TestVersion_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		v := Version{Major: 3, Minor: 7}

		buf := v.AppendTo(nil, engine)
		require.Len(t, buf, VersionSize)

		got := ReadVersion(buf, engine)
		require.Equal(t, v, got)

		buf2 := make([]byte, VersionSize)
		v.PutTo(buf2, engine)
		require.Equal(t, buf, buf2)
	}
}
