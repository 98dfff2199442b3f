package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/selscan"
	"github.com/fwojciec/selscan/scan"
)

// Run executes the classes command.
func (c *ClassesCmd) Run(deps *Dependencies) error {
	return runScan(deps, c.ScanFlags, selscan.SelectorClass)
}

// Run executes the ids command.
func (c *IDsCmd) Run(deps *Dependencies) error {
	return runScan(deps, c.ScanFlags, selscan.SelectorID)
}

// fileOutput is the JSON shape of one scanned file.
type fileOutput struct {
	Path      string   `json:"path"`
	Mode      string   `json:"mode,omitempty"`
	Hash      string   `json:"hash,omitempty"`
	Selectors []string `json:"selectors"`
	Error     string   `json:"error,omitempty"`
}

func runScan(deps *Dependencies, flags ScanFlags, kind selscan.SelectorKind) error {
	scanner := &scan.Scanner{
		Loader:       deps.Loader,
		NewExtractor: deps.NewExtractor,
		Concurrency:  flags.Concurrency,
	}

	result, err := scanner.Scan(deps.Ctx, flags.Paths, kind, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", selscan.ErrorMessage(err))
		return err
	}

	if flags.JSON {
		out := make([]fileOutput, 0, len(result.Files))
		for _, f := range result.Files {
			fo := fileOutput{
				Path:      f.Path,
				Mode:      string(f.Mode),
				Hash:      f.Hash,
				Selectors: f.Selectors,
			}
			if fo.Selectors == nil {
				fo.Selectors = []string{}
			}
			if f.Err != nil {
				fo.Error = selscan.ErrorMessage(f.Err)
			}
			out = append(out, fo)
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
	} else {
		for _, f := range result.Files {
			for _, s := range f.Selectors {
				fmt.Fprintf(deps.Stdout, "%s\t%s\n", f.Path, s)
			}
		}
	}

	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", f.Path, selscan.ErrorMessage(f.Err))
		}
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", result.Failed, len(result.Files))
	}
	return nil
}
