package steinlib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	sectionComment     = "comment"
	sectionGraph       = "graph"
	sectionTerminals   = "terminals"
	sectionCoordinates = "coordinates"
)

// Parse reads a SteinLib-formatted instance from r. It follows the
// original reader's section discipline: "section <name>" opens a block,
// "end" closes it, and within a block, line keywords (nodes, edges, e,
// terminals, t, cost, dd, eof) are recognized regardless of which section
// they appeared under — matching the original parser's tolerance for that
// ambiguity rather than enforcing strict per-section keyword membership.
//
// 1-based vertex numbers in "e"/"t" lines are converted to 0-based ids
// before being stored in the returned Instance.
func Parse(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)

	var inst Instance
	var sawGraphSection, sawTerminalsSection bool
	inSection := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		keyword := fields[0]

		switch keyword {
		case "section":
			if inSection {
				return Instance{}, lineErr(lineNo, ErrNestedSection, "")
			}
			if len(fields) != 2 {
				return Instance{}, lineErr(lineNo, ErrMalformedLine, "section")
			}
			switch fields[1] {
			case sectionComment:
			case sectionGraph:
				sawGraphSection = true
			case sectionTerminals:
				sawTerminalsSection = true
			case sectionCoordinates:
			default:
				return Instance{}, lineErr(lineNo, ErrUnknownSection, fields[1])
			}
			inSection = true

		case "end":
			if !inSection {
				return Instance{}, lineErr(lineNo, ErrUnexpectedEnd, "")
			}
			inSection = false

		case "nodes":
			n, err := parseInt(fields, 1, lineNo, "nodes")
			if err != nil {
				return Instance{}, err
			}
			inst.N = n

		case "edges":
			m, err := parseInt(fields, 1, lineNo, "edges")
			if err != nil {
				return Instance{}, err
			}
			inst.M = m

		case "terminals":
			// "terminals K" (section body) vs the bare "section
			// terminals" header are distinguished by argument count.
			if len(fields) == 1 {
				continue
			}
			k, err := parseInt(fields, 1, lineNo, "terminals")
			if err != nil {
				return Instance{}, err
			}
			inst.K = k

		case "e":
			u, v, w, err := parseEdge(fields, lineNo)
			if err != nil {
				return Instance{}, err
			}
			if err := checkRange(u, inst.N, lineNo); err != nil {
				return Instance{}, err
			}
			if err := checkRange(v, inst.N, lineNo); err != nil {
				return Instance{}, err
			}
			inst.Edges = append(inst.Edges, [3]int64{u - 1, v - 1, w})

		case "t":
			u, err := parseInt(fields, 1, lineNo, "t")
			if err != nil {
				return Instance{}, err
			}
			if err := checkRange(u, inst.N, lineNo); err != nil {
				return Instance{}, err
			}
			inst.Terminals = append(inst.Terminals, u-1)

		case "cost":
			c, err := parseInt(fields, 1, lineNo, "cost")
			if err != nil {
				return Instance{}, err
			}
			inst.Cost = c
			inst.HasCost = true

		case "dd":
			// Coordinate lines are skipped without parsing; the Steiner
			// kernel never uses them.
			continue

		case "eof":
			continue

		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, fmt.Errorf("steinlib: scan: %w", err)
	}

	if !sawGraphSection {
		return Instance{}, ErrMissingGraphSection
	}
	if !sawTerminalsSection {
		return Instance{}, ErrMissingTerminalsSection
	}
	if inst.M != 0 && int64(len(inst.Edges)) != inst.M {
		return Instance{}, fmt.Errorf("%w: declared %d, read %d", ErrEdgeCountMismatch, inst.M, len(inst.Edges))
	}
	if inst.K != 0 && int64(len(inst.Terminals)) != inst.K {
		return Instance{}, fmt.Errorf("%w: declared %d, read %d", ErrTerminalCountMismatch, inst.K, len(inst.Terminals))
	}

	return inst, nil
}

func parseInt(fields []string, at, lineNo int, keyword string) (int64, error) {
	if len(fields) <= at {
		return 0, lineErr(lineNo, ErrMalformedLine, keyword)
	}
	v, err := strconv.ParseInt(fields[at], 10, 64)
	if err != nil {
		return 0, lineErr(lineNo, ErrMalformedLine, keyword)
	}
	return v, nil
}

func parseEdge(fields []string, lineNo int) (u, v, w int64, err error) {
	if len(fields) != 4 {
		return 0, 0, 0, lineErr(lineNo, ErrMalformedLine, "e")
	}
	nums := make([]int64, 3)
	for i, s := range fields[1:] {
		n, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return 0, 0, 0, lineErr(lineNo, ErrMalformedLine, "e")
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func checkRange(v, n int64, lineNo int) error {
	if n != 0 && (v < 1 || v > n) {
		return lineErr(lineNo, ErrVertexOutOfRange, fmt.Sprintf("vertex=%d n=%d", v, n))
	}
	return nil
}

func lineErr(lineNo int, sentinel error, detail string) error {
	if detail == "" {
		return fmt.Errorf("line %d: %w", lineNo, sentinel)
	}
	return fmt.Errorf("line %d: %w: %s", lineNo, sentinel, detail)
}
