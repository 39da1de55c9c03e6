package container

import (
	"fmt"

	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/errs"
)

// HierTree is a recursive tree of named string vectors: a node carries a
// name, its own StringVector of values, and an ordered list of child
// nodes. Only the root of the tree carries the leading ECC tag that fixes
// the byte order for the whole blob.
type HierTree struct {
	Name     string
	Values   StringVector
	Children []HierTree
}

// Encode renders t as a standalone, self-describing blob.
func (t HierTree) Encode(engine endian.EndianEngine) []byte {
	buf := tagHierTree.AppendTo(nil, engine)
	return t.appendNode(buf, engine)
}

func (t HierTree) appendNode(buf []byte, engine endian.EndianEngine) []byte {
	buf = appendString(buf, engine, t.Name)
	buf = t.Values.appendBody(buf, engine)
	buf = engine.AppendUint64(buf, uint64(len(t.Children)))

	for _, child := range t.Children {
		buf = child.appendNode(buf, engine)
	}

	return buf
}

// DecodeHierTree parses a standalone HierTree blob produced by Encode,
// detecting its byte order from the leading tag.
func DecodeHierTree(b []byte) (HierTree, error) {
	engine, rest, err := readTag(b, tagHierTree)
	if err != nil {
		return HierTree{}, err
	}

	node, _, err := readNode(rest, engine)
	return node, err
}

func readNode(b []byte, engine endian.EndianEngine) (HierTree, []byte, error) {
	name, rest, err := readString(b, engine)
	if err != nil {
		return HierTree{}, nil, err
	}

	values, rest, err := readStringVectorBody(rest, engine)
	if err != nil {
		return HierTree{}, nil, err
	}

	if len(rest) < 8 {
		return HierTree{}, nil, fmt.Errorf("container: short read (%d bytes) for hier tree child count: %w", len(rest), errs.ErrInvalidFormat)
	}

	childCount := engine.Uint64(rest[:8])
	rest = rest[8:]

	children := make([]HierTree, 0, childCount)
	for i := uint64(0); i < childCount; i++ {
		child, after, err := readNode(rest, engine)
		if err != nil {
			return HierTree{}, nil, err
		}

		children = append(children, child)
		rest = after
	}

	return HierTree{Name: name, Values: values, Children: children}, rest, nil
}
