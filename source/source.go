// Package source defines the DataSource contract that feeds chunk bytes
// to a writer: a uniform way to describe "here are some bytes, eventually"
// whether they already live in memory, live in a file on disk, or need a
// transform (e.g. compression) applied before they are known.
package source

import "io"

// DataSource is anything that can supply a chunk's payload bytes to a
// writer. Implementations fall into two categories: those whose length is
// known up front (Owned, Borrowed, File) and those that must run Prepare
// before WriteInto to compute it (Deferred).
type DataSource interface {
	// KnownLength returns the source's length and true if it is already
	// known without running Prepare. Sources backed by a transform (e.g.
	// compression) return false until Prepare has run once.
	KnownLength() (uint64, bool)

	// Prepare computes and caches the source's length, performing any
	// work needed to know it (e.g. running a compressor). It is
	// idempotent: calling it more than once is a no-op after the first
	// call. It returns the same value WriteInto will write.
	Prepare() (uint64, error)

	// WriteInto writes the source's bytes to w. Prepare must have been
	// called first if KnownLength returned false.
	WriteInto(w io.Writer) error
}

// Owned is a DataSource backed by an in-memory byte slice the source owns
// (e.g. built by a caller just for this write).
type Owned struct {
	data []byte
}

var _ DataSource = (*Owned)(nil)

// NewOwned wraps data as an Owned data source.
func NewOwned(data []byte) *Owned {
	return &Owned{data: data}
}

func (o *Owned) KnownLength() (uint64, bool) {
	return uint64(len(o.data)), true
}

func (o *Owned) Prepare() (uint64, error) {
	return uint64(len(o.data)), nil
}

func (o *Owned) WriteInto(w io.Writer) error {
	_, err := w.Write(o.data)
	return err
}

// Borrowed is a DataSource backed by a byte slice the caller continues to
// own; the source must not retain the slice beyond the write that
// consumes it.
type Borrowed struct {
	data []byte
}

var _ DataSource = (*Borrowed)(nil)

// NewBorrowed wraps data as a Borrowed data source.
func NewBorrowed(data []byte) *Borrowed {
	return &Borrowed{data: data}
}

func (b *Borrowed) KnownLength() (uint64, bool) {
	return uint64(len(b.data)), true
}

func (b *Borrowed) Prepare() (uint64, error) {
	return uint64(len(b.data)), nil
}

func (b *Borrowed) WriteInto(w io.Writer) error {
	_, err := w.Write(b.data)
	return err
}
