package section

import (
	"testing"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/format"
	"github.com/hff-format/hff/identifier"
	"github.com/stretchr/testify/require"
)

func TestHeader_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		h := NewHeader(identifier.MustEcc("MYAPP"), format.Ecc2, 3, 7)

		buf := h.AppendTo(nil, engine)
		require.Len(t, buf, HeaderSize)

		got, gotEngine, err := ReadHeader(buf)
		require.NoError(t, err)
		require.Equal(t, engine, gotEngine)
		require.Equal(t, h, got)

		buf2 := make([]byte, HeaderSize)
		h.PutTo(buf2, engine)
		require.Equal(t, buf, buf2)
	}
}

func TestHeader_InvalidMagic(t *testing.T) {
	h := NewHeader(identifier.MustEcc("MYAPP"), format.Id, 0, 0)
	buf := h.AppendTo(nil, endian.GetLittleEndianEngine())
	buf[0] = 'X'

	_, _, err := ReadHeader(buf)
	require.Error(t, err)
}

func TestHeader_ShortRead(t *testing.T) {
	_, _, err := ReadHeader(make([]byte, 10))
	require.Error(t, err)
}

func TestHeader_VersionMismatch(t *testing.T) {
	h := NewHeader(identifier.MustEcc("MYAPP"), format.Id, 0, 0)
	h.Version.Major++

	buf := h.AppendTo(nil, endian.GetLittleEndianEngine())
	_, _, err := ReadHeader(buf)
	require.Error(t, err)
}
