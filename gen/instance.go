package gen

import "errors"

// ErrTooFewVertices mirrors builder's ErrTooFewVertices: a size parameter
// fell below the minimum a topology needs to be well-formed.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// Instance is a graph topology ready for graphidx.Graph: n dense vertex ids
// in [0, n) and a list of (u, v, weight) edges.
type Instance struct {
	N     int64
	Edges [][3]int64
}

func (inst *Instance) addEdge(u, v int64, w int64) {
	inst.Edges = append(inst.Edges, [3]int64{u, v, w})
}
