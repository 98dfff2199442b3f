// Package fs provides file-based loading of markup and component sources.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/selscan"
)

// Ensure Loader implements selscan.FileLoader at compile time.
var _ selscan.FileLoader = (*Loader)(nil)

// skipDirs are directory names never descended into during discovery.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// Loader discovers and reads source files from the local filesystem.
type Loader struct {
	// Mode forces every loaded file to this mode. When empty, the mode is
	// derived from each file's extension.
	Mode selscan.Mode
}

// NewLoader creates a new Loader. An empty mode selects by extension.
func NewLoader(mode selscan.Mode) *Loader {
	return &Loader{Mode: mode}
}

// Discover expands roots into source file paths. Directories are walked
// recursively, skipping hidden and dependency directories, and only files
// with a supported extension are kept. Files named explicitly are kept
// when they have a supported extension or a mode is forced.
// Paths under each root are sorted; roots keep their given order.
func (l *Loader) Discover(ctx context.Context, roots []string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, selscan.Errorf(selscan.ENOTFOUND, "path %q not found", root)
		} else if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if l.Mode != "" || selscan.ModeForPath(root) != "" {
				paths = append(paths, root)
			}
			continue
		}

		var found []string
		err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if selscan.ModeForPath(path) != "" {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// Load reads path and determines its mode.
func (l *Loader) Load(ctx context.Context, path string) (*selscan.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := l.Mode
	if mode == "" {
		mode = selscan.ModeForPath(path)
	}
	if mode == "" {
		return nil, selscan.Errorf(selscan.EINVALID, "cannot determine mode for %q", path)
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, selscan.Errorf(selscan.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return nil, err
	}

	contents := string(b)
	return &selscan.SourceFile{
		Path:     path,
		Mode:     mode,
		Contents: contents,
		Hash:     fmt.Sprintf("%016x", xxhash.Sum64String(contents)),
	}, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || skipDirs[name]
}
