package scan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/selscan"
	"github.com/fwojciec/selscan/fs"
	"github.com/fwojciec/selscan/mock"
	"github.com/fwojciec/selscan/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLoader serves files from a map in the given order.
func memLoader(order []string, files map[string]string) *mock.FileLoader {
	return &mock.FileLoader{
		DiscoverFn: func(_ context.Context, _ []string) ([]string, error) {
			return order, nil
		},
		LoadFn: func(_ context.Context, path string) (*selscan.SourceFile, error) {
			contents, ok := files[path]
			if !ok {
				return nil, selscan.Errorf(selscan.ENOTFOUND, "file %q not found", path)
			}
			return &selscan.SourceFile{Path: path, Mode: selscan.ModeForPath(path), Contents: contents, Hash: "h-" + path}, nil
		},
	}
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("extracts selectors from each file in discovery order", func(t *testing.T) {
		t.Parallel()

		order := []string{"a.html", "b.jsx", "c.html"}
		s := &scan.Scanner{
			Loader: memLoader(order, map[string]string{
				"a.html": `<div class="a"><p class="b c"></p></div>`,
				"b.jsx":  `export function B() { return <div className="d" />; }`,
				"c.html": `<span class="e"></span>`,
			}),
			Concurrency: 2,
		}

		result, err := s.Scan(context.Background(), []string{"."}, selscan.SelectorClass, nil)

		require.NoError(t, err)
		require.Len(t, result.Files, 3)
		assert.Equal(t, "a.html", result.Files[0].Path)
		assert.Equal(t, []string{".a", ".b.c"}, result.Files[0].Selectors)
		assert.Equal(t, selscan.ModeMarkup, result.Files[0].Mode)
		assert.Equal(t, "h-a.html", result.Files[0].Hash)
		assert.Equal(t, []string{".d"}, result.Files[1].Selectors)
		assert.Equal(t, selscan.ModeComponent, result.Files[1].Mode)
		assert.Equal(t, []string{".e"}, result.Files[2].Selectors)
		assert.Equal(t, 4, result.Selectors)
		assert.Zero(t, result.Failed)
	})

	t.Run("extracts ids", func(t *testing.T) {
		t.Parallel()

		s := &scan.Scanner{
			Loader: memLoader([]string{"a.html"}, map[string]string{
				"a.html": `<header id="top"><h1 id="title"></h1></header><footer id="bottom"></footer>`,
			}),
		}

		result, err := s.Scan(context.Background(), nil, selscan.SelectorID, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"#top", "#bottom", "#title"}, result.Files[0].Selectors)
	})

	t.Run("records per-file failures and continues", func(t *testing.T) {
		t.Parallel()

		s := &scan.Scanner{
			Loader: memLoader([]string{"broken.jsx", "missing.html", "ok.html"}, map[string]string{
				"broken.jsx": `export function A() { return <div>; }`,
				"ok.html":    `<p class="ok"></p>`,
			}),
		}

		result, err := s.Scan(context.Background(), nil, selscan.SelectorClass, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Failed)
		assert.Equal(t, selscan.EPARSE, selscan.ErrorCode(result.Files[0].Err))
		assert.Equal(t, selscan.ENOTFOUND, selscan.ErrorCode(result.Files[1].Err))
		assert.Equal(t, []string{".ok"}, result.Files[2].Selectors)
		assert.Equal(t, 1, result.Selectors)
	})

	t.Run("uses a fresh extractor per file", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		modes := map[selscan.Mode]int{}
		s := &scan.Scanner{
			Loader: memLoader([]string{"a.html", "b.jsx", "c.html"}, map[string]string{
				"a.html": "", "b.jsx": "", "c.html": "",
			}),
			NewExtractor: func(mode selscan.Mode) (selscan.Extractor, error) {
				mu.Lock()
				modes[mode]++
				mu.Unlock()
				return &mock.Extractor{
					ExtractClassNameFn: func(string) ([]string, error) { return []string{"." + string(mode)}, nil },
				}, nil
			},
		}

		result, err := s.Scan(context.Background(), nil, selscan.SelectorClass, nil)

		require.NoError(t, err)
		assert.Equal(t, map[selscan.Mode]int{selscan.ModeMarkup: 2, selscan.ModeComponent: 1}, modes)
		assert.Equal(t, []string{".component"}, result.Files[1].Selectors)
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		s := &scan.Scanner{
			Loader: memLoader([]string{"a.html", "missing.html"}, map[string]string{
				"a.html": `<p class="a"></p>`,
			}),
			Concurrency: 1,
		}

		var events []scan.ProgressEvent
		_, err := s.Scan(context.Background(), nil, selscan.SelectorClass, func(e scan.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, scan.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, scan.ProgressFinished, events[3].Type)
		assert.Equal(t, 2, events[3].Completed)

		var completed, failed int
		for _, e := range events[1:3] {
			switch e.Type {
			case scan.ProgressCompleted:
				completed++
			case scan.ProgressFailed:
				failed++
				assert.Equal(t, "missing.html", e.Path)
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, failed)
	})

	t.Run("returns discovery error", func(t *testing.T) {
		t.Parallel()

		s := &scan.Scanner{
			Loader: &mock.FileLoader{
				DiscoverFn: func(context.Context, []string) ([]string, error) {
					return nil, selscan.Errorf(selscan.ENOTFOUND, "path %q not found", "nope")
				},
			},
		}

		_, err := s.Scan(context.Background(), []string{"nope"}, selscan.SelectorClass, nil)

		assert.Equal(t, selscan.ENOTFOUND, selscan.ErrorCode(err))
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := &scan.Scanner{Loader: memLoader([]string{"a.html"}, map[string]string{"a.html": ""})}

		_, err := s.Scan(ctx, nil, selscan.SelectorClass, nil)

		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestScanner_ScanFilesystem(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "index.html"), []byte(`<main id="content"></main>`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "Nav.jsx"), []byte(`export function Nav() { return <nav id="primary" />; }`), 0644))

	s := &scan.Scanner{Loader: fs.NewLoader("")}

	result, err := s.Scan(context.Background(), []string{base}, selscan.SelectorID, nil)

	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(base, "Nav.jsx"), result.Files[0].Path)
	assert.Equal(t, []string{"#primary"}, result.Files[0].Selectors)
	assert.Equal(t, []string{"#content"}, result.Files[1].Selectors)
	assert.Len(t, result.Files[1].Hash, 16)
}
