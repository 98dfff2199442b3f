package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/selscan"
	main "github.com/fwojciec/selscan/cmd/selscan"
	"github.com/fwojciec/selscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(loader selscan.FileLoader, extractor selscan.Extractor) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Loader: loader,
		NewExtractor: func(selscan.Mode) (selscan.Extractor, error) {
			return extractor, nil
		},
	}, stdout, stderr
}

func singleFileLoader(contents string) *mock.FileLoader {
	return &mock.FileLoader{
		DiscoverFn: func(_ context.Context, roots []string) ([]string, error) {
			return roots, nil
		},
		LoadFn: func(_ context.Context, path string) (*selscan.SourceFile, error) {
			return &selscan.SourceFile{Path: path, Mode: selscan.ModeMarkup, Contents: contents}, nil
		},
	}
}

func TestClassesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints selectors in extraction order with duplicates", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractClassNameFn: func(contents string) ([]string, error) {
				return []string{".b", ".a", ".b"}, nil
			},
		}
		deps, stdout, _ := newDeps(singleFileLoader("x"), extractor)

		cmd := &main.ClassesCmd{ScanFlags: main.ScanFlags{Paths: []string{"page.html"}}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "page.html\t.b\npage.html\t.a\npage.html\t.b\n", stdout.String())
	})

	t.Run("prints discovery errors", func(t *testing.T) {
		t.Parallel()

		loader := &mock.FileLoader{
			DiscoverFn: func(_ context.Context, roots []string) ([]string, error) {
				return nil, selscan.Errorf(selscan.ENOTFOUND, "path %q not found", roots[0])
			},
		}
		deps, stdout, stderr := newDeps(loader, nil)

		cmd := &main.ClassesCmd{ScanFlags: main.ScanFlags{Paths: []string{"missing"}}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error: path \"missing\" not found")
	})
}

func TestIDsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON including per-file errors", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractIDFn: func(contents string) ([]string, error) {
				return nil, &selscan.ParseError{Line: 2, Column: 5, Message: "syntax error"}
			},
		}
		deps, stdout, stderr := newDeps(singleFileLoader("x"), extractor)

		cmd := &main.IDsCmd{ScanFlags: main.ScanFlags{Paths: []string{"a.jsx"}, JSON: true}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), `"path": "a.jsx"`)
		assert.Contains(t, stdout.String(), `"selectors": []`)
		assert.Contains(t, stdout.String(), `"error": "2:5: syntax error"`)
		assert.Contains(t, stderr.String(), "error: a.jsx: 2:5: syntax error")
	})

	t.Run("returns extractor construction errors per file", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(singleFileLoader("x"), nil)
		deps.NewExtractor = func(selscan.Mode) (selscan.Extractor, error) {
			return nil, errors.New("no parser")
		}

		cmd := &main.IDsCmd{ScanFlags: main.ScanFlags{Paths: []string{"a.html"}}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: a.html: Internal error.")
	})
}
