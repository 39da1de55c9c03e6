package section

import (
	"fmt"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
	"github.com/hff-format/hff/format"
	"github.com/hff-format/hff/identifier"
)

// Header is the fixed 32-byte record at the start of every HFF file.
//
//	offset  size  field
//	0       8     magic
//	8       4     version
//	12      4     id type hint
//	16      8     content tag
//	24      4     table count
//	28      4     chunk count
type Header struct {
	Magic      identifier.Ecc
	Version    Version
	IDType     format.IDType
	ContentTag identifier.Ecc
	TableCount uint32
	ChunkCount uint32
}

// NewHeader builds a Header for a freshly flattened tree. ContentTag
// identifies the application-level schema stored in the file; it carries
// no meaning to the format itself.
func NewHeader(contentTag identifier.Ecc, idType format.IDType, tableCount, chunkCount uint32) Header {
	return Header{
		Magic:      identifier.Magic,
		Version:    CurrentVersion,
		IDType:     idType,
		ContentTag: contentTag,
		TableCount: tableCount,
		ChunkCount: chunkCount,
	}
}

// AppendTo encodes h and appends it to buf using engine.
func (h Header) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = h.Magic.AppendTo(buf, engine)
	buf = h.Version.AppendTo(buf, engine)
	buf = engine.AppendUint32(buf, uint32(h.IDType))
	buf = h.ContentTag.AppendTo(buf, engine)
	buf = engine.AppendUint32(buf, h.TableCount)
	buf = engine.AppendUint32(buf, h.ChunkCount)

	return buf
}

// PutTo encodes h into the first HeaderSize bytes of b using engine.
func (h Header) PutTo(b []byte, engine endian.EndianEngine) {
	h.Magic.PutTo(b[0:8], engine)
	h.Version.PutTo(b[8:12], engine)
	engine.PutUint32(b[12:16], uint32(h.IDType))
	h.ContentTag.PutTo(b[16:24], engine)
	engine.PutUint32(b[24:28], h.TableCount)
	engine.PutUint32(b[28:32], h.ChunkCount)
}

// ReadHeader parses a Header out of the first HeaderSize bytes of b,
// detecting the file's byte order from the magic field. Endian detection
// is the only place the format inspects the magic for anything beyond
// validity: everything past this point is decoded with the detected
// engine.
//
// b must be at least HeaderSize bytes long.
func ReadHeader(b []byte) (Header, endian.EndianEngine, error) {
	if len(b) < HeaderSize {
		return Header{}, nil, fmt.Errorf("section: header: short read (%d bytes): %w", len(b), errs.ErrInvalidFormat)
	}

	little := endian.GetLittleEndianEngine()
	observed := identifier.ReadEcc(b[0:8], little)

	var engine endian.EndianEngine

	switch observed.Endian(identifier.Magic) {
	case identifier.SameEndian:
		engine = little
	case identifier.SwappedEndian:
		engine = endian.GetBigEndianEngine()
	default:
		return Header{}, nil, fmt.Errorf("section: header: magic %q: %w", observed, errs.ErrInvalidMagic)
	}

	h := Header{
		Magic:      identifier.ReadEcc(b[0:8], engine),
		Version:    ReadVersion(b[8:12], engine),
		IDType:     format.IDType(engine.Uint32(b[12:16])),
		ContentTag: identifier.ReadEcc(b[16:24], engine),
		TableCount: engine.Uint32(b[24:28]),
		ChunkCount: engine.Uint32(b[28:32]),
	}

	if !h.Version.Matches(CurrentVersion) {
		return Header{}, nil, fmt.Errorf("section: header: version %d.%d: %w", h.Version.Major, h.Version.Minor, errs.ErrInvalidFormat)
	}

	return h, engine, nil
}
