package selscan

// Extractor extracts selector strings from source text in a fixed mode.
type Extractor interface {
	// ExtractClassName returns every class selector in contents, in walk
	// order. Multiple classes on one element form a single selector.
	ExtractClassName(contents string) ([]string, error)

	// ExtractID returns every id selector in contents, in walk order.
	ExtractID(contents string) ([]string, error)
}
