package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Wang-tianhao/jwtinfo-go/jwtinfo"
	"github.com/spf13/pflag"
)

const applicationName = "jwtinfo"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// Exit statuses
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func newFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	flagSet.BoolP("header", "H", false, "Shows the token header rather than the body")
	flagSet.Bool("full", false, "Shows both header and claims as a single JSON object")
	flagSet.BoolP("pretty", "P", false, "Pretty prints the JWT")
	flagSet.BoolP("verbose", "v", false, "Logs decode events to stderr")
	flagSet.BoolP("version", "V", false, "Prints version information")
	return flagSet
}

func usage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Shows information about a JWT (Json Web Token)\n\n")
	fmt.Fprintf(w, "Usage:\n  %s [flags] <token>\n\n", applicationName)
	fmt.Fprintf(w, "  <token>  the JWT as a string (use \"-\" to read from stdin)\n\n")
	fmt.Fprintf(w, "Flags:\n%s", flagSet.FlagUsages())
}

func run(arguments []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flagSet := newFlagSet()
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { usage(stderr, flagSet) }

	if err := flagSet.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		usage(stderr, flagSet)
		return exitUsage
	}

	var (
		showHeader, _  = flagSet.GetBool("header")
		showFull, _    = flagSet.GetBool("full")
		pretty, _      = flagSet.GetBool("pretty")
		verbose, _     = flagSet.GetBool("verbose")
		showVersion, _ = flagSet.GetBool("version")
	)

	if showVersion {
		fmt.Fprintf(stdout, "%s %s\n", applicationName, version)
		return exitOK
	}

	if showFull && showHeader {
		fmt.Fprintf(stderr, "error: the argument '--full' cannot be used with '--header'\n\n")
		usage(stderr, flagSet)
		return exitUsage
	}

	if flagSet.NArg() != 1 {
		fmt.Fprintf(stderr, "error: exactly one <token> argument is required\n\n")
		usage(stderr, flagSet)
		return exitUsage
	}

	raw := flagSet.Arg(0)
	if raw == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: reading stdin: %v\n", err)
			return exitError
		}
		raw = string(data)
	}
	// Tolerate a pasted Authorization header value
	raw = jwtinfo.TrimBearer(strings.TrimSpace(raw))

	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	cfg, err := jwtinfo.NewConfig(jwtinfo.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	token, err := jwtinfo.Decode(context.Background(), cfg, "cli", raw)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	part := jwtinfo.PartBody
	switch {
	case showFull:
		part = jwtinfo.PartFull
	case showHeader:
		part = jwtinfo.PartHeader
	}

	out, err := token.Render(part, pretty)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, string(out))
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
