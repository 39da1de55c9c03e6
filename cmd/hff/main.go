// Command hff is a thin CLI over the hff library: dump prints a file's
// structure, pack builds a file from a directory tree, unpack reverses
// that. None of the three subcommands are part of the format's contract;
// they exist to give the library something to demonstrate against.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hff: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "dump":
		err = runDump(args)
	case "pack":
		err = runPack(args)
	case "unpack":
		err = runUnpack(args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  hff dump [-chunks] <file>
  hff pack <dir> <file>
  hff unpack <file> <dir>`)
}
