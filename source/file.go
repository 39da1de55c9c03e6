package source

import (
	"fmt"
	"io"
	"os"
)

// File is a DataSource backed by a file on disk. The file is opened when
// the source is created and kept open until WriteInto consumes it; this
// avoids a second filesystem race between measuring the file and copying
// it, at the cost of holding one file descriptor per pending File source.
type File struct {
	f    *os.File
	size uint64
}

var _ DataSource = (*File)(nil)

// NewFile opens path and returns a File data source over it.
func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: stat %s: %w", path, err)
	}

	return &File{f: f, size: uint64(info.Size())}, nil
}

func (f *File) KnownLength() (uint64, bool) {
	return f.size, true
}

func (f *File) Prepare() (uint64, error) {
	return f.size, nil
}

// WriteInto copies the file's contents to w and closes the underlying
// file handle. WriteInto must not be called more than once.
func (f *File) WriteInto(w io.Writer) error {
	defer f.f.Close()

	_, err := io.Copy(w, f.f)
	return err
}
