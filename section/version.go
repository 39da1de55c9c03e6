package section

import "github.com/hff-format/hff/endian"

// VersionSize is the on-disk size, in bytes, of a Version.
const VersionSize = 4

// Version is a major.minor pair identifying the format revision a file was
// written against. A reader accepts a file only when its header version,
// after endian normalization, equals CurrentVersion exactly.
type Version struct {
	Major uint16
	Minor uint16
}

// CurrentVersion is the version this package writes.
var CurrentVersion = Version{Major: 1, Minor: 0}

// Matches reports whether v equals want exactly. The format declares a
// single current version; a file is valid only when its header version,
// after endian normalization, equals it outright.
func (v Version) Matches(want Version) bool {
	return v == want
}

// ReadVersion decodes a Version from the first VersionSize bytes of b.
func ReadVersion(b []byte, engine endian.EndianEngine) Version {
	return Version{
		Major: engine.Uint16(b[0:2]),
		Minor: engine.Uint16(b[2:4]),
	}
}

// AppendTo encodes v and appends it to buf.
func (v Version) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint16(buf, v.Major)
	buf = engine.AppendUint16(buf, v.Minor)

	return buf
}

// PutTo encodes v into the first VersionSize bytes of b.
func (v Version) PutTo(b []byte, engine endian.EndianEngine) {
	engine.PutUint16(b[0:2], v.Major)
	engine.PutUint16(b[2:4], v.Minor)
}
