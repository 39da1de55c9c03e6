package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hff-format/hff"
	"github.com/hff-format/hff/container"
	"github.com/hff-format/hff/endian"
	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/internal/hash"
	"github.com/hff-format/hff/source"
)

var (
	tagArchive = identifier.MustEcc("_ARCHIVE")
	tagDir     = identifier.MustEcc("_DIR")
	tagFile    = identifier.MustEcc("_FILE")
)

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: hff pack <dir> <file>")
	}

	srcDir, outPath := fs.Arg(0), fs.Arg(1)

	root, err := buildTable(srcDir, filepath.Base(srcDir), tagArchive)
	if err != nil {
		return err
	}

	d, err := hff.Hff(root)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return hff.WriteWithSeek(out, d, hff.WithContentTag(tagArchive))
}

// buildTable recursively describes path as a table: directories become
// tables tagged _DIR (or _ARCHIVE at the root) with one child table per
// entry, files become tables tagged _FILE carrying one chunk over the
// file's bytes. Every table's name is kept as its metadata, wrapped in a
// single-entry StringVector so unpack can recover it through the
// container package without consulting the identifier.
func buildTable(path, name string, kind identifier.Ecc) (*hff.TableBuilder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	id := tableIdentifier(kind, name)
	nameBlob := container.StringVector{name}.Encode(endian.Native())
	table := hff.Table(id).Metadata(source.NewOwned(nameBlob))

	if !info.IsDir() {
		f, err := source.NewFile(path)
		if err != nil {
			return nil, err
		}
		table.Chunks(hff.Chunk(id, f))

		return table, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		childKind := tagFile
		if entry.IsDir() {
			childKind = tagDir
		}

		child, err := buildTable(filepath.Join(path, entry.Name()), entry.Name(), childKind)
		if err != nil {
			return nil, err
		}

		table.Children(child)
	}

	return table, nil
}

// tableIdentifier pairs kind (one of tagArchive/tagDir/tagFile) with a
// secondary half derived from name: the name itself if it fits an Ecc, or
// its hash otherwise. Either way the table's real name lives in its
// metadata, not in the identifier.
func tableIdentifier(kind identifier.Ecc, name string) identifier.Identifier {
	if e, err := identifier.NewEcc(name); err == nil {
		return identifier.FromEccPair(kind, e)
	}

	return identifier.FromEccUint64(kind, hash.ID(name))
}
