// Command steiner-solve reads a SteinLib-formatted graph (or generates a
// synthetic one) and computes its minimum Steiner tree cost via the
// Erickson-Monma-Veinott kernel, mirroring the original reader/solver's
// command-line contract: point it at an instance, get back a cost (and
// optionally the tree itself).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/Yishanmys/steiner-edge-linear/dijkstra"
	"github.com/Yishanmys/steiner-edge-linear/emv"
	"github.com/Yishanmys/steiner-edge-linear/gen"
	"github.com/Yishanmys/steiner-edge-linear/graphidx"
	"github.com/Yishanmys/steiner-edge-linear/parallel"
	"github.com/Yishanmys/steiner-edge-linear/steinlib"
	"github.com/Yishanmys/steiner-edge-linear/traceback"
)

func main() {
	var (
		in        = flag.String("in", "", "path to a SteinLib-format instance file")
		genName   = flag.String("gen", "", "generate an instance instead of reading -in: path|cycle|grid|complete|star|random")
		n         = flag.Int64("n", 0, "vertex count for -gen (rows for grid)")
		cols      = flag.Int64("cols", 0, "column count for -gen grid")
		k         = flag.Int("k", 0, "terminal count for -gen (random selection)")
		seed      = flag.Int64("seed", 1, "RNG seed for -gen and its terminal selection")
		workers   = flag.Int("workers", parallel.DefaultWorkers(), "worker count for the solve")
		erickson  = flag.Bool("erickson", true, "run the Erickson-Monma-Veinott Steiner solver")
		el        = flag.Bool("el", true, "alias for -erickson")
		traceFlag = flag.Bool("trace", false, "print reconstructed tree edges as \"e u v w\" lines")
		dij       = flag.String("dijkstra", "", "u,v: print the shortest-path distance between two vertices and exit")
		list      = flag.Bool("list", false, "print the traceback edge list as solution: [\"u v\", ...]")
	)
	flag.Parse()

	loaded, err := loadIndex(*in, *genName, *n, *cols, *k, *seed, *workers)
	if err != nil {
		log.Fatalf("steiner-solve: %v", err)
	}
	idx := loaded.idx

	if *dij != "" {
		u, v, err := parsePair(*dij)
		if err != nil {
			log.Fatalf("steiner-solve: -dijkstra: %v", err)
		}
		sc := dijkstra.NewScratch(int(idx.Size()))
		if err := dijkstra.Run(idx, u, sc); err != nil {
			log.Fatalf("steiner-solve: dijkstra: %v", err)
		}
		if sc.Dist[v] >= graphidx.Inf {
			fmt.Printf("%d -> %d: unreachable\n", u, v)
		} else {
			fmt.Printf("%d -> %d: %d\n", u, v, sc.Dist[v])
		}
		return
	}

	if !*erickson || !*el {
		return
	}

	res, err := emv.Solve(idx, emv.Options{Traceback: *traceFlag || *list})
	if err != nil {
		log.Fatalf("steiner-solve: solve: %v", err)
	}
	fmt.Printf("cost %d\n", res.Cost)

	if loaded.hasCost && res.Cost != loaded.cost {
		log.Fatalf("steiner-solve: declared cost %d disagrees with computed cost %d", loaded.cost, res.Cost)
	}

	if *traceFlag || *list {
		edges, err := traceback.Expand(idx, res)
		if err != nil {
			log.Fatalf("steiner-solve: traceback: %v", err)
		}
		if *traceFlag {
			for _, e := range edges {
				fmt.Printf("e %d %d %d\n", e.U, e.V, e.Weight)
			}
		}
		if *list {
			pairs := make([]string, len(edges))
			for i, e := range edges {
				pairs[i] = fmt.Sprintf("%q", fmt.Sprintf("%d %d", e.U+1, e.V+1))
			}
			fmt.Printf("solution: [%s]\n", strings.Join(pairs, ", "))
		}
	}
}

// loadResult bundles the compiled index with the instance's declared
// expected cost, if any (steinlib's "cost c" line): SteinLib files may
// declare an expected optimum for validation, which cmd/steiner-solve checks
// after solving and aborts on disagreement.
type loadResult struct {
	idx     *graphidx.Index
	cost    int64
	hasCost bool
}

func loadIndex(in, genName string, n, cols int64, k int, seed int64, workers int) (loadResult, error) {
	opts := []graphidx.Option{graphidx.WithWorkers(workers)}

	if genName != "" {
		idx, err := genIndex(genName, n, cols, k, seed, opts)
		if err != nil {
			return loadResult{}, err
		}
		return loadResult{idx: idx}, nil
	}
	if in == "" {
		return loadResult{}, fmt.Errorf("one of -in or -gen is required")
	}
	f, err := os.Open(in)
	if err != nil {
		return loadResult{}, fmt.Errorf("open %s: %w", in, err)
	}
	defer f.Close()

	parsed, err := steinlib.Parse(f)
	if err != nil {
		return loadResult{}, fmt.Errorf("parse %s: %w", in, err)
	}

	g, err := graphidx.NewGraph(parsed.N, opts...)
	if err != nil {
		return loadResult{}, err
	}
	for _, e := range parsed.Edges {
		if err := g.AddEdge(e[0], e[1], e[2]); err != nil {
			return loadResult{}, err
		}
	}
	for _, t := range parsed.Terminals {
		if err := g.AddTerminal(t); err != nil {
			return loadResult{}, err
		}
	}
	idx, err := g.Compile()
	if err != nil {
		return loadResult{}, err
	}
	return loadResult{idx: idx, cost: parsed.Cost, hasCost: parsed.HasCost}, nil
}

func genIndex(name string, n, cols int64, k int, seed int64, opts []graphidx.Option) (*graphidx.Index, error) {
	var inst gen.Instance
	var err error
	switch name {
	case "path":
		inst, err = gen.Path(n, gen.WithSeed(seed))
	case "cycle":
		inst, err = gen.Cycle(n, gen.WithSeed(seed))
	case "grid":
		inst, err = gen.Grid(n, cols, gen.WithSeed(seed))
	case "complete":
		inst, err = gen.Complete(n, gen.WithSeed(seed))
	case "star":
		inst, err = gen.Star(n, gen.WithSeed(seed))
	case "random":
		inst, err = gen.RandomSparse(n, 0.3, gen.WithSeed(seed))
	default:
		return nil, fmt.Errorf("unknown -gen topology %q", name)
	}
	if err != nil {
		return nil, err
	}

	if k <= 0 {
		k = 3
	}
	terms, err := gen.RandomTerminals(inst.N, k, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return gen.BuildIndex(inst, terms, opts...)
}

func parsePair(s string) (u, v int64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"u,v\", got %q", s)
	}
	u, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid u: %w", err)
	}
	v, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid v: %w", err)
	}
	return u, v, nil
}
