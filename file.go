package selscan

import "context"

// SourceFile is a source file loaded for extraction.
type SourceFile struct {
	Path     string
	Mode     Mode
	Contents string

	// Hash is a hex-encoded hash of Contents.
	Hash string
}

// FileLoader finds and reads source files.
type FileLoader interface {
	// Discover expands roots (files or directories) into the list of
	// supported source files, in a stable order.
	// Returns ENOTFOUND if a root does not exist.
	Discover(ctx context.Context, roots []string) ([]string, error)

	// Load reads a single file and determines its mode.
	// Returns EINVALID if no mode applies to the file.
	Load(ctx context.Context, path string) (*SourceFile, error)
}
