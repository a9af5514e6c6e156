package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	style    string
	template string
	verbose  bool
	version  bool
}

// parseFlags parses options and returns them along with the remaining
// positional arguments: <source-dir> <dest-dir>.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	fs.StringVar(&flags.style, "style", "", "path to a stylesheet overriding the embedded tufte.css")
	fs.StringVar(&flags.template, "template", "", "path to a page template overriding the embedded one")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log per-document progress to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
