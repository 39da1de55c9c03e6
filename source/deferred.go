package source

import (
	"fmt"
	"io"

	"github.com/hff-format/hff/compress"
)

// Deferred is a DataSource whose final bytes aren't known until a
// transform (currently: compression) has run once over the input. It is
// the Go analogue of the original format's compressed data source
// variant: length is unknown until Prepare runs the codec, after which
// the compressed bytes are cached for WriteInto.
type Deferred struct {
	codec    compress.Compressor
	input    []byte
	prepared []byte
}

var _ DataSource = (*Deferred)(nil)

// NewDeferred builds a Deferred source that will compress input with
// codec the first time Prepare or WriteInto needs its length.
func NewDeferred(codec compress.Compressor, input []byte) *Deferred {
	return &Deferred{codec: codec, input: input}
}

func (d *Deferred) KnownLength() (uint64, bool) {
	if d.prepared != nil {
		return uint64(len(d.prepared)), true
	}

	return 0, false
}

// Prepare runs the compressor over the input, caching the result so a
// later call (or WriteInto) is free. Safe to call more than once.
func (d *Deferred) Prepare() (uint64, error) {
	if d.prepared != nil {
		return uint64(len(d.prepared)), nil
	}

	out, err := d.codec.Compress(d.input)
	if err != nil {
		return 0, fmt.Errorf("source: deferred: compress: %w", err)
	}
	if out == nil {
		out = []byte{}
	}

	d.prepared = out

	return uint64(len(out)), nil
}

func (d *Deferred) WriteInto(w io.Writer) error {
	if d.prepared == nil {
		if _, err := d.Prepare(); err != nil {
			return err
		}
	}

	_, err := w.Write(d.prepared)
	return err
}
