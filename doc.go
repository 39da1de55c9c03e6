// Package hff is the top-level convenience façade over the format's
// building blocks: tree.TableBuilder/tree.Chunk/tree.Hff for describing a
// tree, Write/WriteWithSeek for serializing it, and OpenRandomAccess,
// ReadFully and Inspect for getting back a read.Hff. Using the
// subpackages directly (section, tree, write, read, identifier, source)
// works too; this package exists so the common path needs only one import.
package hff
