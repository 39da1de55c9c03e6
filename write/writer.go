// Package write turns a flattened tree into the bit-exact HFF byte stream,
// in either of two modes that must produce identical output: a single
// forward pass over a plain io.Writer, or a seek-back pass over an
// io.WriteSeeker that rewrites the index once every payload's length is
// known.
package write

import (
	"fmt"
	"io"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
	"github.com/hff-format/hff/format"
	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/internal/pool"
	"github.com/hff-format/hff/section"
	"github.com/hff-format/hff/source"
	"github.com/hff-format/hff/tree"
)

// offsetLen is one entry of the flattener's data-source consumption order:
// the source's offset within the payload blob (before the blob's own
// offset into the file is added) and its unpadded length.
type offsetLen struct {
	offset uint64
	length uint64
}

// prepareSources runs Prepare on every source in order, accumulating each
// one's blob-relative offset with 16-byte padding between entries.
func prepareSources(sources []source.DataSource) ([]offsetLen, error) {
	pairs := make([]offsetLen, len(sources))

	var offset uint64
	for i, s := range sources {
		length, err := s.Prepare()
		if err != nil {
			return nil, fmt.Errorf("write: prepare source %d: %w: %w", i, errs.ErrInvalidTableData, err)
		}

		pairs[i] = offsetLen{offset: offset, length: length}
		offset += section.AlignUp(length)
	}

	return pairs, nil
}

// blobBase returns the absolute file offset of the start of the payload
// blob for a file with the given table and chunk counts.
func blobBase(tableCount, chunkCount int) uint64 {
	return uint64(section.HeaderSize) + uint64(tableCount)*uint64(section.TableSize) + uint64(chunkCount)*uint64(section.ChunkSize)
}

// patchIndex walks tables in array order, consuming one (offset, length)
// pair from pairs per metadata-flagged table, then chunkCount pairs per
// table, and writes the absolute (blob-relative offset + base) values
// into the matching table/chunk fields. This is the flat-loop consumption
// order the flattener's Sources slice was built to match.
func patchIndex(tables []section.Table, chunks []section.Chunk, hasMetadata []bool, pairs []offsetLen, base uint64) {
	entry := 0

	chunkIndex := 0
	for i := range tables {
		if hasMetadata[i] {
			p := pairs[entry]
			tables[i].MetadataOffset = p.offset + base
			tables[i].MetadataLength = p.length
			entry++
		}

		for n := uint32(0); n < tables[i].ChunkCount; n++ {
			p := pairs[entry]
			chunks[chunkIndex].Offset = p.offset + base
			chunks[chunkIndex].Length = p.length
			entry++
			chunkIndex++
		}
	}
}

// Write serializes f in streaming mode: every source is prepared up
// front so the whole index can be patched before anything is emitted,
// then the header, table array, chunk array and payload blob are written
// to w in a single forward pass. w needs no seek capability.
func Write(w io.Writer, f tree.Flattened, contentTag identifier.Ecc, idType format.IDType, engine endian.EndianEngine) error {
	pairs, err := prepareSources(f.Sources)
	if err != nil {
		return err
	}

	base := blobBase(len(f.Tables), len(f.Chunks))
	patchIndex(f.Tables, f.Chunks, f.HasMetadata, pairs, base)

	header := section.NewHeader(contentTag, idType, uint32(len(f.Tables)), uint32(len(f.Chunks)))

	out := pool.GetWriterBuffer()
	defer pool.PutWriterBuffer(out)

	out.B = header.AppendTo(out.B, engine)
	for _, t := range f.Tables {
		out.B = t.AppendTo(out.B, engine)
	}
	for _, c := range f.Chunks {
		out.B = c.AppendTo(out.B, engine)
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("write: index: %w", err)
	}

	return writePayload(w, f.Sources)
}

// writePayload streams each source's bytes followed by its zero padding,
// in the same order prepareSources accounted for.
func writePayload(w io.Writer, sources []source.DataSource) error {
	var pad [section.Alignment]byte

	for i, s := range sources {
		if err := s.WriteInto(w); err != nil {
			return fmt.Errorf("write: payload source %d: %w", i, err)
		}

		length, ok := s.KnownLength()
		if !ok {
			// Prepare has already run for every source by the time
			// writePayload is called; KnownLength must now be true.
			return fmt.Errorf("write: payload source %d: length unknown after prepare", i)
		}

		if n := section.PadLen(length); n > 0 {
			if _, err := w.Write(pad[:n]); err != nil {
				return fmt.Errorf("write: payload padding %d: %w", i, err)
			}
		}
	}

	return nil
}

// WriteSeeker is the subset of io.WriteSeeker the lazy writer needs.
type WriteSeeker interface {
	io.Writer
	io.Seeker
}

// LazyWrite serializes f in seek-back mode: the header and a zero-filled
// index are emitted first, the payload blob is streamed immediately
// after (so nothing needs to be buffered in memory up front), and only
// then does the writer seek back to patch the index with the offsets and
// lengths the streaming pass just produced. It must produce byte-for-byte
// the same file Write does for the same input.
func LazyWrite(w WriteSeeker, f tree.Flattened, contentTag identifier.Ecc, idType format.IDType, engine endian.EndianEngine) error {
	header := section.NewHeader(contentTag, idType, uint32(len(f.Tables)), uint32(len(f.Chunks)))

	headerBuf := pool.GetWriterBuffer()
	defer pool.PutWriterBuffer(headerBuf)
	headerBuf.B = header.AppendTo(headerBuf.B, engine)

	if _, err := w.Write(headerBuf.Bytes()); err != nil {
		return fmt.Errorf("write: header: %w", err)
	}

	indexSize := len(f.Tables)*section.TableSize + len(f.Chunks)*section.ChunkSize
	zeroBuf := pool.GetStageBuffer()
	defer pool.PutStageBuffer(zeroBuf)
	zeroBuf.ExtendOrGrow(indexSize)
	clear(zeroBuf.B)
	if _, err := w.Write(zeroBuf.Bytes()); err != nil {
		return fmt.Errorf("write: zero index: %w", err)
	}

	pairs, err := prepareSources(f.Sources)
	if err != nil {
		return err
	}

	if err := writePayload(w, f.Sources); err != nil {
		return err
	}

	base := blobBase(len(f.Tables), len(f.Chunks))
	patchIndex(f.Tables, f.Chunks, f.HasMetadata, pairs, base)

	if _, err := w.Seek(int64(section.HeaderSize), io.SeekStart); err != nil {
		return fmt.Errorf("write: seek back to index: %w", err)
	}

	indexBuf := pool.GetWriterBuffer()
	defer pool.PutWriterBuffer(indexBuf)
	for _, t := range f.Tables {
		indexBuf.B = t.AppendTo(indexBuf.B, engine)
	}
	for _, c := range f.Chunks {
		indexBuf.B = c.AppendTo(indexBuf.B, engine)
	}

	if _, err := w.Write(indexBuf.Bytes()); err != nil {
		return fmt.Errorf("write: patched index: %w", err)
	}

	return nil
}
