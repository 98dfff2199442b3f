package main

import (
	"context"
	"io"

	"github.com/fwojciec/selscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Loader       selscan.FileLoader
	NewExtractor func(mode selscan.Mode) (selscan.Extractor, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log discovery and extraction details to stderr"`

	Classes ClassesCmd `cmd:"" help:"List class selectors used in source files"`
	IDs     IDsCmd     `cmd:"" name:"ids" help:"List id selectors used in source files"`
}

// ScanFlags are the arguments shared by the scanning commands.
type ScanFlags struct {
	Paths       []string `arg:"" name:"path" help:"Files or directories to scan"`
	Mode        string   `short:"m" env:"SELSCAN_MODE" help:"Source mode: markup (html) or component (jsx). Detected from the file extension when empty."`
	Concurrency int      `short:"c" default:"4" env:"SELSCAN_CONCURRENCY" help:"Files processed at once"`
	JSON        bool     `name:"json" help:"Write results as JSON"`
}

// ClassesCmd is the "classes" subcommand.
type ClassesCmd struct {
	ScanFlags `embed:""`
}

// IDsCmd is the "ids" subcommand.
type IDsCmd struct {
	ScanFlags `embed:""`
}
