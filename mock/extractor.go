package mock

import "github.com/fwojciec/selscan"

var _ selscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of selscan.Extractor.
type Extractor struct {
	ExtractClassNameFn func(contents string) ([]string, error)
	ExtractIDFn        func(contents string) ([]string, error)
}

func (e *Extractor) ExtractClassName(contents string) ([]string, error) {
	return e.ExtractClassNameFn(contents)
}

func (e *Extractor) ExtractID(contents string) ([]string, error) {
	return e.ExtractIDFn(contents)
}
