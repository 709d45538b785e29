// Package steinlib parses the SteinLib plain-text instance format: a
// section/end block structure carrying a "graph" section (nodes, edges, e u
// v w lines), a "terminals" section (terminals, t u lines), an optional
// "coordinates" section (ignored), and top-level "cost"/"eof" lines.
//
// There is no Go precedent for this line-oriented format in the surrounding
// package set — the grammar is grounded directly on the original reader's
// graph_load routine, which this package's Parse follows section-by-section
// and line-keyword-by-line-keyword, converting from the format's 1-based
// vertex numbering to graphidx's 0-based ids as each "e"/"t" line is read.
// Parsing itself is plain bufio.Scanner plus strings.Fields, in keeping with
// the rest of this module's sentinel-error style (errors.go, fmt.Errorf
// with %w and a line number for context) rather than a parser-combinator or
// reflection-based decoder — nothing in this module's stack reaches for one
// for a format this small.
package steinlib
