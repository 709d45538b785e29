package refsolve

import "errors"

// ErrDisconnected indicates no spanning tree exists over the requested
// vertex set.
var ErrDisconnected = errors.New("refsolve: vertex set is disconnected")

// ErrTooManyVertices indicates n exceeds what the brute-force subset
// enumeration can feasibly cover.
var ErrTooManyVertices = errors.New("refsolve: instance too large for brute force")
