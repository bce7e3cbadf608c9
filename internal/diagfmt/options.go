// Package diagfmt renders a diag.Bag as human-readable, optionally
// colorized terminal output. It sits above the core's diag/source
// packages and is owned by the CLI, not the semantic pipeline itself.
package diagfmt

// PathMode controls how a diagnostic's file path is displayed.
type PathMode uint8

const (
	// PathModeAuto lets the underlying File choose relative or absolute.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures Pretty's rendering.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	Context   int // lines of context shown around the primary span
	ShowNotes bool
}
