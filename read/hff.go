// Package read parses an HFF stream into an immutable in-memory index and
// provides three ways to fetch payload bytes against it: random-access
// seeking, an in-memory cache, or inspection-only (structure alone, no
// payload fetch capability).
package read

import (
	"fmt"
	"io"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
	"github.com/hff-format/hff/format"
	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/section"
)

// Hff is the parsed, immutable index of an HFF file: its header fields
// plus the full table and chunk arrays. It never owns payload bytes
// directly; payload access goes through whichever fetcher was installed
// at open time.
type Hff struct {
	header  section.Header
	engine  endian.EndianEngine
	tables  []section.Table
	chunks  []section.Chunk
	fetcher fetcher
}

// Version reports the format version the file declared.
func (h *Hff) Version() section.Version { return h.header.Version }

// ContentTag reports the application-defined content tag from the header.
func (h *Hff) ContentTag() identifier.Ecc { return h.header.ContentTag }

// IDType reports the header's identifier-interpretation hint.
func (h *Hff) IDType() format.IDType { return h.header.IDType }

// Engine reports the byte order detected while parsing the header.
func (h *Hff) Engine() endian.EndianEngine { return h.engine }

// IsNativeEndian reports whether the file was written in the host's own
// byte order.
func (h *Hff) IsNativeEndian() bool { return endian.CompareNativeEndian(h.engine) }

// TableCount is the number of tables in the table array.
func (h *Hff) TableCount() int { return len(h.tables) }

// ChunkCount is the number of chunks in the chunk array.
func (h *Hff) ChunkCount() int { return len(h.chunks) }

// Table projects table i as a TableView.
func (h *Hff) Table(i int) TableView { return TableView{hff: h, index: i} }

// Chunk projects chunk j as a ChunkView.
func (h *Hff) Chunk(j int) ChunkView { return ChunkView{hff: h, index: j} }

// Tables iterates the root-level tables: those with no parent, walked via
// each table's sibling stride.
func (h *Hff) Tables() TableIter {
	return newTableIter(h, 0)
}

// DepthFirst iterates every table in file order, paired with its depth.
func (h *Hff) DepthFirst() DepthFirstIter {
	return newDepthFirstIter(h)
}

// blobBase is the absolute file offset of the first payload byte.
func (h *Hff) blobBase() uint64 {
	return uint64(section.HeaderSize) + uint64(len(h.tables))*uint64(section.TableSize) + uint64(len(h.chunks))*uint64(section.ChunkSize)
}

// Payload fetches the bytes located by v. A zero-length location returns
// an empty, nil-error result without touching the underlying fetcher.
func (h *Hff) Payload(v Locatable) ([]byte, error) {
	length := v.Length()
	if length == 0 {
		return nil, nil
	}

	return h.fetcher.fetch(v.Offset(), length)
}

// parseStructure reads the header, table array and chunk array from r in
// the order they appear on disk, using the byte order the header's magic
// reveals.
func parseStructure(r io.Reader) (section.Header, endian.EndianEngine, []section.Table, []section.Chunk, error) {
	headerBuf := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return section.Header{}, nil, nil, nil, fmt.Errorf("read: header: %w", err)
	}

	header, engine, err := section.ReadHeader(headerBuf)
	if err != nil {
		return section.Header{}, nil, nil, nil, err
	}

	tables := make([]section.Table, header.TableCount)
	if header.TableCount > 0 {
		buf := make([]byte, int(header.TableCount)*section.TableSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return section.Header{}, nil, nil, nil, fmt.Errorf("read: table array: %w", err)
		}
		for i := range tables {
			tables[i] = section.ReadTable(buf[i*section.TableSize:], engine)
		}
	}

	chunks := make([]section.Chunk, header.ChunkCount)
	if header.ChunkCount > 0 {
		buf := make([]byte, int(header.ChunkCount)*section.ChunkSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return section.Header{}, nil, nil, nil, fmt.Errorf("read: chunk array: %w", err)
		}
		for i := range chunks {
			chunks[i] = section.ReadChunk(buf[i*section.ChunkSize:], engine)
		}
	}

	// Bound-check every index field before any iterator dereferences it:
	// a chunk run must stay within the chunk array and a sibling stride
	// must land inside the table array.
	for i := range tables {
		t := tables[i]
		if t.ChunkCount > 0 && uint64(t.ChunkStart)+uint64(t.ChunkCount) > uint64(len(chunks)) {
			return section.Header{}, nil, nil, nil, fmt.Errorf("read: table %d: chunk run [%d,%d) exceeds %d chunks: %w",
				i, t.ChunkStart, uint64(t.ChunkStart)+uint64(t.ChunkCount), len(chunks), errs.ErrInvalidFormat)
		}
		if s := uint64(t.SiblingStride); s > 0 && uint64(i)+s >= uint64(len(tables)) {
			return section.Header{}, nil, nil, nil, fmt.Errorf("read: table %d: sibling stride %d exceeds %d tables: %w",
				i, t.SiblingStride, len(tables), errs.ErrInvalidFormat)
		}
	}

	return header, engine, tables, chunks, nil
}

// OpenRandomAccess parses the structure from rs and keeps rs open for
// on-demand payload fetches. Fetches are serialized behind a mutex: one
// seek+read at a time, matching the single-producer/single-fetcher
// discipline the format assumes for a shared reader.
func OpenRandomAccess(rs io.ReadSeeker) (*Hff, error) {
	header, engine, tables, chunks, err := parseStructure(rs)
	if err != nil {
		return nil, err
	}

	return &Hff{
		header:  header,
		engine:  engine,
		tables:  tables,
		chunks:  chunks,
		fetcher: &randomAccessFetcher{rs: rs},
	}, nil
}

// OpenCached parses the structure from r then reads the remainder of the
// stream into memory as the payload blob; subsequent fetches slice that
// buffer instead of touching r again. r need not support Seek.
func OpenCached(r io.Reader) (*Hff, error) {
	header, engine, tables, chunks, err := parseStructure(r)
	if err != nil {
		return nil, err
	}

	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: payload blob: %w", err)
	}

	base := uint64(section.HeaderSize) + uint64(len(tables))*uint64(section.TableSize) + uint64(len(chunks))*uint64(section.ChunkSize)

	return &Hff{
		header:  header,
		engine:  engine,
		tables:  tables,
		chunks:  chunks,
		fetcher: &cacheFetcher{base: base, blob: blob},
	}, nil
}

// OpenInspectionOnly parses the structure from r and installs no payload
// source: any Payload call on the result fails with errs.ErrNoPayloadSource.
func OpenInspectionOnly(r io.Reader) (*Hff, error) {
	header, engine, tables, chunks, err := parseStructure(r)
	if err != nil {
		return nil, err
	}

	return &Hff{
		header:  header,
		engine:  engine,
		tables:  tables,
		chunks:  chunks,
		fetcher: inspectionFetcher{},
	}, nil
}

