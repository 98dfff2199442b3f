// Package scan runs selector extraction over many source files.
// It coordinates file discovery, loading and per-file extraction.
package scan

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/selscan"
	"github.com/fwojciec/selscan/extract"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files processed at once when
// Scanner.Concurrency is not set.
const DefaultConcurrency = 4

// Scanner extracts selectors from every file below a set of roots.
type Scanner struct {
	Loader selscan.FileLoader

	// NewExtractor builds the extractor for one file. Each file gets its
	// own extractor. Defaults to extract.New.
	NewExtractor func(mode selscan.Mode) (selscan.Extractor, error)

	Concurrency int
}

// FileResult holds the outcome of scanning a single file.
type FileResult struct {
	Path      string
	Mode      selscan.Mode
	Hash      string
	Selectors []string
	Err       error
}

// Result holds the outcome of a scan.
type Result struct {
	Files     []FileResult
	Selectors int
	Failed    int
}

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// Scan discovers the files below roots and extracts selectors of the given
// kind from each. Files are processed concurrently but results keep
// discovery order. A file that fails to load or parse is recorded in its
// FileResult and does not stop the scan.
func (s *Scanner) Scan(ctx context.Context, roots []string, kind selscan.SelectorKind, progress ProgressFunc) (*Result, error) {
	paths, err := s.Loader.Discover(ctx, roots)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		result   FileResult
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				resultCh <- indexed{position: i, result: s.scanFile(gctx, path, kind)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	result := &Result{Files: make([]FileResult, total)}
	for r := range resultCh {
		completed.Add(1)
		result.Files[r.position] = r.result

		if r.result.Err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Path:      r.result.Path,
					Error:     r.result.Err,
				})
			}
			continue
		}

		result.Selectors += len(r.result.Selectors)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      r.result.Path,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: int(completed.Load()),
			Total:     total,
		})
	}
	return result, nil
}

func (s *Scanner) scanFile(ctx context.Context, path string, kind selscan.SelectorKind) FileResult {
	result := FileResult{Path: path}

	file, err := s.Loader.Load(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Mode = file.Mode
	result.Hash = file.Hash

	extractor, err := s.newExtractor(file.Mode)
	if err != nil {
		result.Err = err
		return result
	}

	switch kind {
	case selscan.SelectorClass:
		result.Selectors, result.Err = extractor.ExtractClassName(file.Contents)
	case selscan.SelectorID:
		result.Selectors, result.Err = extractor.ExtractID(file.Contents)
	default:
		result.Err = selscan.Errorf(selscan.EINVALID, "unsupported selector kind %d", kind)
	}
	return result
}

func (s *Scanner) newExtractor(mode selscan.Mode) (selscan.Extractor, error) {
	if s.NewExtractor != nil {
		return s.NewExtractor(mode)
	}
	return extract.New(mode)
}
