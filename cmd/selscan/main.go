package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/selscan"
	"github.com/fwojciec/selscan/extract"
	"github.com/fwojciec/selscan/fs"
	selslog "github.com/fwojciec/selscan/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("selscan"),
		kong.Description("List the CSS class and id selectors used in HTML and JSX sources"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'selscan --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	flags := cli.Flags(kongCtx.Command())
	if flags == nil {
		return fmt.Errorf("unknown command %q", kongCtx.Command())
	}

	var mode selscan.Mode
	if flags.Mode != "" {
		if mode, err = selscan.ParseMode(flags.Mode); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", selscan.ErrorMessage(err))
			return err
		}
	}

	// Wire dependencies
	var loader selscan.FileLoader = fs.NewLoader(mode)
	newExtractor := func(fileMode selscan.Mode) (selscan.Extractor, error) {
		return extract.New(fileMode)
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		loader = selslog.NewLoggingLoader(loader, logger)
		newExtractor = func(fileMode selscan.Mode) (selscan.Extractor, error) {
			e, err := extract.New(fileMode)
			if err != nil {
				return nil, err
			}
			return selslog.NewLoggingExtractor(e, logger), nil
		}
	}

	deps.Loader = loader
	deps.NewExtractor = newExtractor

	return kongCtx.Run(deps)
}

// Flags returns the scan flags of the command selected by kong, or nil.
func (c *CLI) Flags(command string) *ScanFlags {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "classes":
		return &c.Classes.ScanFlags
	case "ids":
		return &c.IDs.ScanFlags
	default:
		return nil
	}
}
