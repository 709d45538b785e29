package gen

import "github.com/Yishanmys/steiner-edge-linear/graphidx"

// BuildIndex compiles inst and terminals directly into a graphidx.Index,
// for callers that just want a ready-to-solve fixture without touching
// graphidx.Graph themselves.
func BuildIndex(inst Instance, terminals []int64, opts ...graphidx.Option) (*graphidx.Index, error) {
	g, err := graphidx.NewGraph(inst.N, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range inst.Edges {
		if err := g.AddEdge(e[0], e[1], e[2]); err != nil {
			return nil, err
		}
	}
	for _, t := range terminals {
		if err := g.AddTerminal(t); err != nil {
			return nil, err
		}
	}
	return g.Compile()
}
