package hff

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/source"
	"github.com/stretchr/testify/require"
)

func id(name string) identifier.Identifier {
	return identifier.FromEcc(identifier.MustEcc(name))
}

func sampleDescriptor(t *testing.T) Descriptor {
	t.Helper()

	leaf := Table(id("leaf")).
		Metadata(source.NewOwned([]byte("leaf metadata"))).
		Chunks(Chunk(id("c0"), source.NewOwned([]byte("chunk bytes"))))

	root := Table(id("root")).
		Metadata(source.NewOwned([]byte("root metadata"))).
		Children(leaf)

	d, err := Hff(root)
	require.NoError(t, err)

	return d
}

func TestWrite_ThenOpenRandomAccess_RoundTripsStructureAndPayload(t *testing.T) {
	d := sampleDescriptor(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, WithContentTag(identifier.MustEcc("APP"))))

	reader, err := OpenRandomAccess(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, reader.TableCount())
	require.Equal(t, 1, reader.ChunkCount())
	require.Equal(t, identifier.MustEcc("APP"), reader.ContentTag())

	var sawRoot, sawLeaf bool
	for depth, tv := range reader.DepthFirst() {
		primary, _ := tv.Identifier().AsEccPair()
		switch primary {
		case identifier.MustEcc("root"):
			require.Equal(t, 0, depth)
			sawRoot = true
			meta, err := reader.Payload(tv)
			require.NoError(t, err)
			require.Equal(t, "root metadata", string(meta))
		case identifier.MustEcc("leaf"):
			require.Equal(t, 1, depth)
			sawLeaf = true
			meta, err := reader.Payload(tv)
			require.NoError(t, err)
			require.Equal(t, "leaf metadata", string(meta))

			for chunk := range tv.Chunks() {
				payload, err := reader.Payload(chunk)
				require.NoError(t, err)
				require.Equal(t, "chunk bytes", string(payload))
			}
		}
	}
	require.True(t, sawRoot)
	require.True(t, sawLeaf)
}

func TestWriteWithSeek_MatchesWriteByteForByte(t *testing.T) {
	streamed := sampleDescriptor(t)
	var streamBuf bytes.Buffer
	require.NoError(t, Write(&streamBuf, streamed, WithByteOrder(endian.GetBigEndianEngine())))

	lazy := sampleDescriptor(t)
	path := filepath.Join(t.TempDir(), "out.hff")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWithSeek(f, lazy, WithByteOrder(endian.GetBigEndianEngine())))
	require.NoError(t, f.Close())

	lazyBytes, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, streamBuf.Bytes(), lazyBytes)
}

func TestInspect_HasNoPayloadSource(t *testing.T) {
	d := sampleDescriptor(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d))

	reader, err := Inspect(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	root := reader.Table(0)
	_, err = reader.Payload(root)
	require.Error(t, err)
}

func TestReadFully_DoesNotNeedSeek(t *testing.T) {
	d := sampleDescriptor(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d))

	reader, err := ReadFully(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	root := reader.Table(0)
	meta, err := reader.Payload(root)
	require.NoError(t, err)
	require.Equal(t, "root metadata", string(meta))
}

func TestHff_RejectsDuplicateMetadata(t *testing.T) {
	root := Table(id("root")).
		Metadata(source.NewOwned([]byte("one"))).
		Metadata(source.NewOwned([]byte("two")))

	_, err := Hff(root)
	require.Error(t, err)
}
