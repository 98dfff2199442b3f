package mock

import (
	"context"

	"github.com/fwojciec/selscan"
)

var _ selscan.FileLoader = (*FileLoader)(nil)

// FileLoader is a mock implementation of selscan.FileLoader.
type FileLoader struct {
	DiscoverFn func(ctx context.Context, roots []string) ([]string, error)
	LoadFn     func(ctx context.Context, path string) (*selscan.SourceFile, error)
}

func (l *FileLoader) Discover(ctx context.Context, roots []string) ([]string, error) {
	return l.DiscoverFn(ctx, roots)
}

func (l *FileLoader) Load(ctx context.Context, path string) (*selscan.SourceFile, error) {
	return l.LoadFn(ctx, path)
}
