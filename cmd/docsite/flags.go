package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// genFlags holds all flags for the generate run.
type genFlags struct {
	config      string
	output      string
	title       string
	docVersion  string
	main        string
	readme      string
	logo        string
	highlight   string
	workers     int
	quiet       bool
	verbose     bool
	showVersion bool
}

// parseFlags parses CLI flags and returns the positional args
// (the descriptor file).
func parseFlags(args []string) (*genFlags, []string, error) {
	fs := flag.NewFlagSet("docsite", flag.ContinueOnError)
	f := &genFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.title, "title", "", "project title")
	fs.StringVar(&f.docVersion, "doc-version", "", "project version shown in pages")
	fs.StringVar(&f.main, "main", "", `main page id (default "overview", never "index")`)
	fs.StringVar(&f.readme, "readme", "", "README file to include")
	fs.StringVar(&f.logo, "logo", "", "logo file (JPEG or PNG)")
	fs.StringVar(&f.highlight, "highlight", "", "code highlight mode: client, server")
	fs.IntVarP(&f.workers, "workers", "w", 0, "page rendering workers (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-step progress")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage summary.
func printUsage(w *os.File) {
	fmt.Fprintln(w, `usage: docsite [flags] <descriptors.yaml>

Renders a static documentation site from a module descriptor file.

Flags:
  -o, --output dir       output directory (required, wiped each run)
      --title string     project title
      --doc-version s    project version shown in pages
      --main string      main page id (default "overview")
      --readme file      README to include
      --logo file        logo image (JPEG or PNG)
      --highlight mode   code highlighting: client (default), server
  -w, --workers n        page rendering workers (0 = auto)
  -c, --config name      config file name or path
  -q, --quiet            only show errors
  -v, --verbose          show per-step progress
      --version          print version and exit`)
}
