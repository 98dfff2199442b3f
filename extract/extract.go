// Package extract binds an extraction mode to its tree source and runs the
// selector walk.
package extract

import (
	"github.com/fwojciec/selscan"
	"github.com/fwojciec/selscan/goquery"
	"github.com/fwojciec/selscan/treesitter"
)

// Ensure Extractor implements selscan.Extractor at compile time.
var _ selscan.Extractor = (*Extractor)(nil)

// Extractor extracts selectors from source text of a single mode.
//
// Every call starts from an empty result, so an Extractor may be reused.
// An Extractor holds no mutable state and is safe for concurrent use when
// its TreeSource is.
type Extractor struct {
	mode   selscan.Mode
	source selscan.TreeSource
}

// New returns an Extractor for mode, using goquery for markup and
// tree-sitter for components.
// Returns EINVALID if mode is not supported.
func New(mode selscan.Mode) (*Extractor, error) {
	switch mode {
	case selscan.ModeMarkup:
		return NewWithSource(mode, goquery.NewSource()), nil
	case selscan.ModeComponent:
		return NewWithSource(mode, treesitter.NewSource()), nil
	default:
		return nil, selscan.Errorf(selscan.EINVALID, "unsupported mode %q", mode)
	}
}

// NewWithSource returns an Extractor that parses with src.
func NewWithSource(mode selscan.Mode, src selscan.TreeSource) *Extractor {
	return &Extractor{mode: mode, source: src}
}

// Mode returns the mode the Extractor was created with.
func (e *Extractor) Mode() selscan.Mode {
	return e.mode
}

// ExtractClassName returns the class selectors in contents.
func (e *Extractor) ExtractClassName(contents string) ([]string, error) {
	return e.extract(contents, selscan.SelectorClass)
}

// ExtractID returns the id selectors in contents.
func (e *Extractor) ExtractID(contents string) ([]string, error) {
	return e.extract(contents, selscan.SelectorID)
}

func (e *Extractor) extract(contents string, kind selscan.SelectorKind) ([]string, error) {
	tree, err := e.source.Parse(contents)
	if err != nil {
		return nil, err
	}
	return selscan.Collect([]string{}, tree, kind), nil
}
