// Package selscan extracts CSS class and id selectors referenced in markup
// (HTML) and component templates (JSX) so that tooling such as dead-CSS
// detection can tell which selectors are actually used in source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, treesitter/, slog/).
package selscan
