// Command piece edits a piece table with a Lua script and prints the
// result.
//
// Usage:
//
//	piece [-d] [-pieces] [-stat] [-e script] [-f file]
//
// Without -e or -f it appends "Hello", " " and "World!" to an empty text.
// The script sees the text through the global table described in package
// script. The final text is written to standard output; -pieces and -stat
// report on the piece chain and the content to standard error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bgrundmann/piece"
	"github.com/bgrundmann/piece/script"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "piece:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("piece", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("d", false, "set for verbose debugging")
	expr := fs.String("e", "", "Lua `script` to run")
	file := fs.String("f", "", "Lua script `file` to run")
	dumpPieces := fs.Bool("pieces", false, "print the piece chain")
	stat := fs.Bool("stat", false, "print byte, rune and grapheme counts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	if !*debug {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(stderr)
	}
	log.Println("starting up")

	t := piece.New()
	if *expr == "" && *file == "" {
		t.AppendString("Hello")
		t.AppendString(" ")
		t.AppendString("World!")
	} else {
		r := script.New(t)
		defer r.Close()
		if *file != "" {
			log.Printf("running %s", *file)
			if err := r.DoFile(*file); err != nil {
				return err
			}
		}
		if *expr != "" {
			log.Printf("running %q", *expr)
			if err := r.DoString(*expr); err != nil {
				return err
			}
		}
	}
	log.Printf("text is %d bytes in %d pieces", t.Len(), t.NumPieces())

	if _, err := t.WriteTo(stdout); err != nil {
		return err
	}
	if *dumpPieces {
		printPieces(stderr, t)
	}
	if *stat {
		printStat(stderr, t)
	}
	return nil
}

func printPieces(w io.Writer, t *piece.Text) {
	it := t.Pieces()
	for {
		start, p, ok := it.Next()
		if !ok {
			return
		}
		fmt.Fprintf(w, "%d\tpiece %d\tbuffer %v\n", start, p, t.Span(p))
	}
}

func printStat(w io.Writer, t *piece.Text) {
	fmt.Fprintf(w, "bytes %d\npieces %d\n", t.Len(), t.NumPieces())
	s, err := t.TextString()
	if err != nil {
		fmt.Fprintf(w, "binary: %v\n", err)
		return
	}
	fmt.Fprintf(w, "runes %d\ngraphemes %d\n", utf8.RuneCountInString(s), uniseg.GraphemeClusterCount(s))
}
