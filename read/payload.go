package read

import (
	"fmt"
	"io"
	"sync"

	"github.com/hff-format/hff/errs"
)

// fetcher resolves an (offset, length) payload location, as read from the
// file's own absolute-offset fields, into bytes. It is never exposed
// outside this package: callers always go through Hff.Payload.
type fetcher interface {
	fetch(offset, length uint64) ([]byte, error)
}

// randomAccessFetcher reads payload bytes on demand from an underlying
// io.ReadSeeker. rs is guarded by mu so concurrent fetches from a reader
// shared across goroutines are linearized one seek+read at a time, per the
// single-fetch-at-a-time discipline the format assumes for a shared reader.
type randomAccessFetcher struct {
	mu sync.Mutex
	rs io.ReadSeeker
}

func (f *randomAccessFetcher) fetch(offset, length uint64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.rs.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("read: payload: seek %d: %w", offset, err)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(f.rs, buf); err != nil {
		return nil, fmt.Errorf("read: payload: read %d bytes at %d: %w", length, offset, err)
	}

	return buf, nil
}

// cacheFetcher serves payload bytes by slicing an in-memory copy of the
// blob that was read up front; fetches never touch the original stream
// again. The returned slice aliases blob and must not be mutated or
// retained past blob's lifetime by callers that care about that.
type cacheFetcher struct {
	base uint64
	blob []byte
}

func (f *cacheFetcher) fetch(offset, length uint64) ([]byte, error) {
	if offset < f.base {
		return nil, fmt.Errorf("read: payload: offset %d before blob base %d: %w", offset, f.base, errs.ErrInvalidFormat)
	}

	start := offset - f.base
	end := start + length
	if end > uint64(len(f.blob)) {
		return nil, fmt.Errorf("read: payload: range [%d,%d) exceeds cached blob of %d bytes: %w", start, end, len(f.blob), errs.ErrInvalidFormat)
	}

	return f.blob[start:end], nil
}

// inspectionFetcher serves no payload source: every fetch fails with
// ErrNoPayloadSource, matching a reader opened purely to inspect structure.
type inspectionFetcher struct{}

func (inspectionFetcher) fetch(uint64, uint64) ([]byte, error) {
	return nil, errs.ErrNoPayloadSource
}
