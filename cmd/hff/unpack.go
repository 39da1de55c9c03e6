package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hff-format/hff"
	"github.com/hff-format/hff/container"
	"github.com/hff-format/hff/errs"
)

func runUnpack(args []string) error {
	fs := flag.NewFlagSet("unpack", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: hff unpack <file> <dir>")
	}

	inPath, destDir := fs.Arg(0), fs.Arg(1)

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := hff.OpenRandomAccess(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}

	// The root level holds the single _ARCHIVE table pack produced; unpack
	// its children directly into destDir rather than nesting one more
	// level under the archive's own name.
	for root := range doc.Tables() {
		for child := range root.Children() {
			if err := unpackTable(doc, child, destDir); err != nil {
				return err
			}
		}
	}

	return nil
}

func unpackTable(doc *hff.Reader, tv hff.TableView, parentDir string) error {
	name, err := tableName(doc, tv)
	if err != nil {
		return err
	}

	dest, err := safeJoin(parentDir, name)
	if err != nil {
		return err
	}

	primary, _ := tv.Identifier().AsEccPair()
	if primary == tagFile {
		return unpackFile(doc, tv, dest)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	for child := range tv.Children() {
		if err := unpackTable(doc, child, dest); err != nil {
			return err
		}
	}

	return nil
}

func unpackFile(doc *hff.Reader, tv hff.TableView, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	for cv := range tv.Chunks() {
		payload, err := doc.Payload(cv)
		if err != nil {
			return err
		}
		if _, err := out.Write(payload); err != nil {
			return err
		}
	}

	return nil
}

func tableName(doc *hff.Reader, tv hff.TableView) (string, error) {
	if !tv.HasMetadata() {
		return "", fmt.Errorf("table %s carries no name metadata: %w", idString(tv.Identifier()), errs.ErrNotFound)
	}

	b, err := doc.Payload(tv)
	if err != nil {
		return "", err
	}

	names, err := container.DecodeStringVector(b)
	if err != nil {
		return "", fmt.Errorf("table %s: decoding name metadata: %w", idString(tv.Identifier()), err)
	}
	if len(names) != 1 {
		return "", fmt.Errorf("table %s: name metadata holds %d entries, want 1: %w", idString(tv.Identifier()), len(names), errs.ErrInvalidFormat)
	}

	return names[0], nil
}

// safeJoin joins parentDir and name, rejecting any name that would escape
// parentDir (a path component of ".." or an absolute path), the way a
// trusted archive format's unpacker must against an untrusted one.
func safeJoin(parentDir, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || strings.Contains(name, string(filepath.Separator)) {
		return "", fmt.Errorf("unpack: entry name %q: %w", name, errs.ErrPathPrefix)
	}

	joined := filepath.Join(parentDir, name)
	if !strings.HasPrefix(joined, filepath.Clean(parentDir)+string(filepath.Separator)) {
		return "", fmt.Errorf("unpack: entry name %q escapes %s: %w", name, parentDir, errs.ErrPathPrefix)
	}

	return joined, nil
}
