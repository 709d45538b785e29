package steinlib

import "errors"

// Sentinel errors returned by Parse. Errors tied to one input line are
// wrapped with its line number via fmt.Errorf("line %d: %w: ...", ...).
// The missing-section and count-mismatch errors are detected after the whole
// input is read and carry no line number.
var (
	// ErrNestedSection indicates a "section" line appeared before the
	// previous section's "end" line.
	ErrNestedSection = errors.New("steinlib: nested section")

	// ErrUnknownSection indicates "section <name>" named something other
	// than comment, graph, terminals, or coordinates.
	ErrUnknownSection = errors.New("steinlib: unknown section")

	// ErrUnexpectedEnd indicates an "end" line with no open section.
	ErrUnexpectedEnd = errors.New("steinlib: end without section")

	// ErrMalformedLine indicates a recognized keyword's arguments failed
	// to parse (wrong count or non-numeric).
	ErrMalformedLine = errors.New("steinlib: malformed line")

	// ErrMissingGraphSection indicates the input never declared a "graph"
	// section.
	ErrMissingGraphSection = errors.New("steinlib: missing graph section")

	// ErrMissingTerminalsSection indicates the input never declared a
	// "terminals" section.
	ErrMissingTerminalsSection = errors.New("steinlib: missing terminals section")

	// ErrEdgeCountMismatch indicates the declared "edges" count didn't
	// match the number of "e" lines actually read.
	ErrEdgeCountMismatch = errors.New("steinlib: edge count mismatch")

	// ErrTerminalCountMismatch indicates the declared "terminals" count
	// didn't match the number of "t" lines actually read.
	ErrTerminalCountMismatch = errors.New("steinlib: terminal count mismatch")

	// ErrVertexOutOfRange indicates an "e" or "t" line named a vertex
	// outside [1, n] (1-based, as the format declares it).
	ErrVertexOutOfRange = errors.New("steinlib: vertex out of declared range")
)
