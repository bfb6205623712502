package main

import (
	"fmt"
	"io"
)

// options holds the parsed command line surface: two mutually trivial
// boolean modes.
type options struct {
	quiet bool
	help  bool
}

// parseArgs parses the command line arguments (program name excluded).
// At most one argument is accepted, and it must be -q or -h.
func parseArgs(args []string) (options, error) {
	var opts options

	if len(args) > 1 {
		return opts, fmt.Errorf("too many arguments")
	}

	for _, arg := range args {
		switch arg {
		case "-h":
			opts.help = true
		case "-q":
			opts.quiet = true
		default:
			return opts, fmt.Errorf("unexpected flag %q", arg)
		}
	}

	return opts, nil
}

func usage(w io.Writer, execname string) {
	fmt.Fprintf(w,
		"Usage: %s [-h] [-q]\n"+
			"  -q: Quiet mode, print this process' canary and exit.\n"+
			"  -h: Display this help message.\n", execname)
}
