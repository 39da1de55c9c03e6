package container

import (
	"fmt"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
	"github.com/hff-format/hff/internal/pool"
)

// StringVector is an ordered list of UTF-8 strings, encoded as a leading
// ECC tag (for standalone use), a u64 count, then each string as a u64
// byte-length prefix followed by its raw bytes.
type StringVector []string

// Encode renders v as a standalone, self-describing blob: tag + count +
// entries, in engine's byte order.
func (v StringVector) Encode(engine endian.EndianEngine) []byte {
	buf := tagStringVector.AppendTo(nil, engine)
	return v.appendBody(buf, engine)
}

// appendBody appends just the count + entries, without the leading tag:
// used when v is nested inside a blob (StringMap, HierTree) that already
// carries its own tag and has therefore already fixed the byte order.
func (v StringVector) appendBody(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, uint64(len(v)))
	for _, s := range v {
		buf = appendString(buf, engine, s)
	}

	return buf
}

// DecodeStringVector parses a standalone StringVector blob produced by
// Encode, detecting its byte order from the leading tag.
func DecodeStringVector(b []byte) (StringVector, error) {
	engine, rest, err := readTag(b, tagStringVector)
	if err != nil {
		return nil, err
	}

	v, _, err := readStringVectorBody(rest, engine)
	return v, err
}

// readStringVectorBody reads the count + entries from the front of b using
// the already-detected engine, returning the vector and the remainder of b.
func readStringVectorBody(b []byte, engine endian.EndianEngine) (StringVector, []byte, error) {
	if len(b) < 8 {
		return nil, nil, fmt.Errorf("container: short read (%d bytes) for string vector count: %w", len(b), errs.ErrInvalidFormat)
	}

	count := engine.Uint64(b[:8])
	b = b[8:]

	scratch, release := pool.GetStringSlice(int(count))
	defer release()

	for i := range scratch {
		s, rest, err := readString(b, engine)
		if err != nil {
			return nil, nil, err
		}

		scratch[i] = s
		b = rest
	}

	out := make(StringVector, count)
	copy(out, scratch)

	return out, b, nil
}
