package container

import (
	"fmt"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
)

// StringMapEntry is one (key, values) pair of a StringMap, kept as a slice
// instead of a Go map so encoding order is caller-controlled and decoding
// is deterministic.
type StringMapEntry struct {
	Key    string
	Values StringVector
}

// StringMap is a string-keyed map of string vectors: a leading ECC tag, a
// u64 count, then each entry as a length-prefixed key followed by its
// value StringVector's body (no nested tag — the outer tag already fixed
// the byte order for the whole blob).
type StringMap []StringMapEntry

// Encode renders m as a standalone, self-describing blob.
func (m StringMap) Encode(engine endian.EndianEngine) []byte {
	buf := tagStringMap.AppendTo(nil, engine)
	buf = engine.AppendUint64(buf, uint64(len(m)))

	for _, entry := range m {
		buf = appendString(buf, engine, entry.Key)
		buf = entry.Values.appendBody(buf, engine)
	}

	return buf
}

// DecodeStringMap parses a standalone StringMap blob produced by Encode,
// detecting its byte order from the leading tag.
func DecodeStringMap(b []byte) (StringMap, error) {
	engine, rest, err := readTag(b, tagStringMap)
	if err != nil {
		return nil, err
	}

	if len(rest) < 8 {
		return nil, fmt.Errorf("container: short read (%d bytes) for string map count: %w", len(rest), errs.ErrInvalidFormat)
	}

	count := engine.Uint64(rest[:8])
	rest = rest[8:]

	out := make(StringMap, 0, count)
	for i := uint64(0); i < count; i++ {
		key, afterKey, err := readString(rest, engine)
		if err != nil {
			return nil, err
		}

		values, afterValues, err := readStringVectorBody(afterKey, engine)
		if err != nil {
			return nil, err
		}

		out = append(out, StringMapEntry{Key: key, Values: values})
		rest = afterValues
	}

	return out, nil
}

// Get returns the values for key and whether key was present.
func (m StringMap) Get(key string) (StringVector, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Values, true
		}
	}

	return nil, false
}
