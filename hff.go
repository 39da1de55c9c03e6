package hff

import (
	"io"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/format"
	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/internal/options"
	"github.com/hff-format/hff/read"
	"github.com/hff-format/hff/tree"
	"github.com/hff-format/hff/write"
)

// Re-exported tree-building vocabulary: a caller describing a new file
// needs only this package.
type (
	TableBuilder = tree.TableBuilder
	ChunkDesc    = tree.ChunkDesc
	Descriptor   = tree.HffDescriptor
)

// Table starts a new table description for id.
var Table = tree.Table

// Chunk builds a ChunkDesc.
var Chunk = tree.Chunk

// Hff assembles a forest of TableBuilders into a Descriptor ready to
// write, failing if any table in the forest was given metadata twice.
var Hff = tree.Hff

// Re-exported reader vocabulary.
type (
	Reader    = read.Hff
	TableView = read.TableView
	ChunkView = read.ChunkView
)

// OpenRandomAccess parses rs's structure and keeps rs open, fetching
// payload bytes on demand with one seek+read at a time.
var OpenRandomAccess = read.OpenRandomAccess

// ReadFully parses r's structure then reads the rest of the stream into
// memory; payload fetches slice that in-memory copy. r need not seek.
var ReadFully = read.OpenCached

// Inspect parses r's structure only; any payload fetch against the
// result fails with errs.ErrNoPayloadSource.
var Inspect = read.OpenInspectionOnly

// writeConfig collects the byte order, content tag and id-type hint a
// single Write/WriteWithSeek call needs. All three have workable zero
// values, so a bare Write(sink, descriptor) call is legal.
type writeConfig struct {
	engine     endian.EndianEngine
	contentTag identifier.Ecc
	idType     format.IDType
}

// WriteOption configures one Write or WriteWithSeek call.
type WriteOption = options.Option[*writeConfig]

// WithByteOrder picks the byte order the index and payloads are written
// in. Defaults to the host's native order.
func WithByteOrder(engine endian.EndianEngine) WriteOption {
	return options.NoError(func(c *writeConfig) { c.engine = engine })
}

// WithContentTag sets the application-defined content tag stamped into
// the header. Defaults to the invalid/unset Ecc.
func WithContentTag(tag identifier.Ecc) WriteOption {
	return options.NoError(func(c *writeConfig) { c.contentTag = tag })
}

// WithIDType sets the header's identifier-interpretation hint. Defaults to
// format.Id. No core decoding step ever branches on this value; it exists
// purely for viewers.
func WithIDType(idType format.IDType) WriteOption {
	return options.NoError(func(c *writeConfig) { c.idType = idType })
}

func resolveWriteConfig(opts []WriteOption) (*writeConfig, error) {
	cfg := &writeConfig{engine: endian.Native(), idType: format.Id}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Write serializes d to w in streaming mode: every data source is sized
// up front so the whole index can be patched before anything is emitted.
// w needs no seek capability.
func Write(w io.Writer, d Descriptor, opts ...WriteOption) error {
	cfg, err := resolveWriteConfig(opts)
	if err != nil {
		return err
	}

	return write.Write(w, d.Flattened, cfg.contentTag, cfg.idType, cfg.engine)
}

// WriteWithSeek serializes d to w in seek-back mode: the header and a
// zero-filled index are emitted first, the payload blob is streamed right
// after, and only then is the index rewritten with the offsets and
// lengths the streaming pass produced. w must support Seek.
func WriteWithSeek(w write.WriteSeeker, d Descriptor, opts ...WriteOption) error {
	cfg, err := resolveWriteConfig(opts)
	if err != nil {
		return err
	}

	return write.LazyWrite(w, d.Flattened, cfg.contentTag, cfg.idType, cfg.engine)
}
