// Command virty-ws classifies the characters of its input against the
// whitespace tables, printing one line per code point. It exists mostly so
// the compatibility tables can be inspected from the shell when debugging a
// tokenizer that feeds this library.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/jacoblockett/virty"
	"github.com/jacoblockett/virty/internal/cliutil"
)

type cmdopts struct {
	Symbols bool `long:"symbols" description:"classify visible whitespace glyphs as whitespace"`
	Only    bool `long:"only" description:"print only characters classified as whitespace"`
	Version bool `long:"version"`
}

const version = "0.1.0"

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Print(`Usage : virty-ws [options] [strings ...]
	Classify each character of the arguments (or of stdin) against the
	whitespace tables
	--symbols : include the visible whitespace glyph set
	--only    : print only whitespace characters
	--version : display the version
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		fmt.Printf("virty-ws: version %s\n", version)
		return 0
	}

	var in io.Reader
	switch {
	case len(args) > 0:
		in = strings.NewReader(strings.Join(args, " "))
	case !cliutil.IsTty(os.Stdin):
		in = os.Stdin
	default:
		showUsage()
		return 1
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	rdr := bufio.NewReader(in)
	for {
		r, _, err := rdr.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		ws := virty.IsWhitespace(r, opts.Symbols)
		if opts.Only && !ws {
			continue
		}
		fmt.Fprintf(out, "U+%04X whitespace=%t\n", r, ws)
	}
	return 0
}
