package identifier

import "github.com/hff-format/hff/internal/hash"

// FromName derives a deterministic Identifier for an arbitrary-length
// name, for tooling that needs a stable identifier for names longer than
// the 8 bytes an Ecc can hold directly. (cmd/hff's pack subcommand does
// not call it; it builds its identifiers in its own tableIdentifier.) It is not part of the format's core:
// nothing under section/tree/write/read calls it.
//
// Names that do fit in 8 bytes go through NewEcc directly and are paired
// with themselves (FromEccPair(e, e)) so that short, human-legible names
// stay readable via Ecc.String on either half.
func FromName(name string) Identifier {
	if e, err := NewEcc(name); err == nil {
		return FromEccPair(e, e)
	}

	return FromEccUint64(Ecc(hash.ID(name)), hash.ID(name+"\x00"))
}
