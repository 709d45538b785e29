package traceback

import "errors"

// ErrNoBackTable indicates Expand was called against a Result whose
// Options.Traceback was false, so no BackTable was ever built.
var ErrNoBackTable = errors.New("traceback: result has no back table")

// ErrMissingEdge indicates the back table pointed at an edge (u, v) that
// does not exist in idx's adjacency — a sign idx and the Result it produced
// came from different compiles.
var ErrMissingEdge = errors.New("traceback: recorded edge not found in index")
