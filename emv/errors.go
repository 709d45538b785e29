package emv

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNoTerminals indicates idx carries no terminals at all.
	ErrNoTerminals = errors.New("emv: index has no terminals")

	// ErrTooManyTerminals indicates more terminals than graphidx.MaxTerminals.
	ErrTooManyTerminals = errors.New("emv: too many terminals for bitmask DP")

	// ErrWorkerMismatch indicates idx carries a non-positive worker count, so
	// it has no virtual-source slot for Solve to drive.
	ErrWorkerMismatch = errors.New("emv: index worker count is not positive")

	// ErrDisconnected indicates no Steiner tree exists because some terminal
	// is unreachable from the others.
	ErrDisconnected = errors.New("emv: terminals are not all mutually reachable")
)
