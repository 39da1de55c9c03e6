package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hff-format/hff/identifier"
	"github.com/hff-format/hff/read"
)

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	showChunks := fs.Bool("chunks", false, "also list each table's chunks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: hff dump [-chunks] <file>")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := read.OpenInspectionOnly(f)
	if err != nil {
		return err
	}

	fmt.Printf("version: %d.%d\n", doc.Version().Major, doc.Version().Minor)
	fmt.Printf("content tag: %s\n", doc.ContentTag())
	fmt.Printf("id type: %s\n", doc.IDType())
	fmt.Printf("byte order: %s\n", doc.Engine())
	fmt.Printf("tables: %d, chunks: %d\n\n", doc.TableCount(), doc.ChunkCount())

	for depth, tv := range doc.DepthFirst() {
		indent := strings.Repeat("  ", depth)
		fmt.Printf("%s%s  children=%d chunks=%d metadata=%s\n",
			indent, idString(tv.Identifier()), tv.ChildCount(), tv.ChunkCount(), metadataSummary(tv))

		if *showChunks {
			for cv := range tv.Chunks() {
				fmt.Printf("%s  - chunk %s offset=%d length=%d\n",
					indent, idString(cv.Identifier()), cv.Offset(), cv.Length())
			}
		}
	}

	return nil
}

func metadataSummary(tv read.TableView) string {
	if !tv.HasMetadata() {
		return "none"
	}
	return fmt.Sprintf("%d bytes", tv.Length())
}

// idString renders an identifier the way a human reading a dump wants to
// see it: as the primary half's Ecc text when that half is non-zero
// (followed by "/" and the secondary half's text when that is non-zero
// too), falling back to a numeric pair when the primary half is zero.
func idString(id identifier.Identifier) string {
	primary, secondary := id.AsEccPair()
	switch {
	case primary.IsValid() && secondary.IsValid():
		return fmt.Sprintf("%s/%s", primary, secondary)
	case primary.IsValid():
		return primary.String()
	default:
		return fmt.Sprintf("%#016x%016x", id.Hi(), id.Lo())
	}
}
