package graphidx

import "errors"

// Sentinel errors returned by Graph and Index construction.
var (
	// ErrBadVertexCount indicates n <= 0 was passed to NewGraph.
	ErrBadVertexCount = errors.New("graphidx: vertex count must be positive")

	// ErrVertexRange indicates a vertex id fell outside [0, n).
	ErrVertexRange = errors.New("graphidx: vertex id out of range")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("graphidx: edge weight must be non-negative")

	// ErrNoTerminals indicates Compile was called with zero terminals.
	ErrNoTerminals = errors.New("graphidx: at least one terminal is required")

	// ErrTooManyTerminals indicates more than MaxTerminals terminals were supplied.
	ErrTooManyTerminals = errors.New("graphidx: at most 32 terminals are supported")

	// ErrDuplicateTerminal indicates the same vertex was added as a terminal twice.
	ErrDuplicateTerminal = errors.New("graphidx: duplicate terminal")

	// ErrBadWorkerCount indicates a non-positive worker count was requested.
	ErrBadWorkerCount = errors.New("graphidx: worker count must be positive")
)

// MaxTerminals is the hard cap on |T| the EMV kernel's bitmask DP supports
// (masks are packed into a single uint64; k <= 32 leaves ample headroom).
const MaxTerminals = 32

// Inf denotes "no edge / unreachable". It mirrors the source's MATH_INF:
// large enough that no two finite path costs can overflow int64 when summed,
// but callers must still treat it as absorbing (never add to it) per the
// Dijkstra engine's contract.
const Inf int64 = 1<<62 - 1
