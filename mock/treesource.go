package mock

import "github.com/fwojciec/selscan"

var _ selscan.TreeSource = (*TreeSource)(nil)

// TreeSource is a mock implementation of selscan.TreeSource.
type TreeSource struct {
	ParseFn func(contents string) (*selscan.Tree, error)
}

func (s *TreeSource) Parse(contents string) (*selscan.Tree, error) {
	return s.ParseFn(contents)
}
