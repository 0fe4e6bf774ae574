package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
)

// Version information (set by GoReleaser)
const defaultVersion = "dev"

var (
	version = defaultVersion
	_       = "none"    // commit - set by GoReleaser but not used
	_       = "unknown" // date - set by GoReleaser but not used
)

func main() {
	initVersion()

	app := newApp(defaultDependencies())
	if err := app.Run(context.Background(), os.Args); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed).Fprintln(w, err)
}
