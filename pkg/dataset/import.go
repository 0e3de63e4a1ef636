package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

// Read decodes a dataset in format f from r.
//
// Formats that do not carry clique information (DIMACS, solver input) yield
// a Dataset with K == 0 and no cliques. Read validates every edge: endpoints
// must be in range, distinct, and the edge count must match the header.
func Read(r io.Reader, f Format) (Dataset, error) {
	switch f {
	case FormatJSON:
		return readJSON(r)
	case FormatEdgeList:
		return readEdgeList(r)
	case FormatDIMACS:
		return readDIMACS(r)
	case FormatSolver:
		return readSolver(r)
	default:
		return Dataset{}, errs.New(errs.ErrCodeInvalidFormat, "unknown dataset format %q", f)
	}
}

// Load reads the dataset at path. An empty format is inferred from the
// file extension.
func Load(path string, f Format) (Dataset, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return Dataset{}, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	d, err := Read(file, f)
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}
	return d, nil
}

func readJSON(r io.Reader) (Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, errs.Wrap(errs.ErrCodeInvalidDataset, err, "decode json")
	}
	if len(doc.Matrix) != doc.Nodes {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "adjacency matrix has %d rows, want %d", len(doc.Matrix), doc.Nodes)
	}

	edges, err := EdgesFromMatrix(doc.Matrix)
	if err != nil {
		return Dataset{}, err
	}
	if len(edges) != doc.Edges {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "adjacency matrix holds %d edges, header says %d", len(edges), doc.Edges)
	}

	listed := make([]graph.Edge, len(doc.EdgeList))
	for i, p := range doc.EdgeList {
		listed[i] = graph.NewEdge(p[0], p[1])
	}
	slices.SortFunc(listed, graph.Edge.Compare)
	if !slices.Equal(listed, edges) {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "edge list does not match adjacency matrix")
	}

	for _, c := range doc.Cliques {
		for _, id := range c {
			if id < 0 || id >= doc.Nodes {
				return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "clique node %d out of range", id)
			}
		}
	}

	return Dataset{Nodes: doc.Nodes, Edges: edges, K: doc.K, Cliques: cliqueSets(doc.Cliques)}, nil
}

func readEdgeList(r io.Reader) (Dataset, error) {
	header := map[string]int{}
	var pairs [][2]int
	err := scanLines(r, func(lineNo int, line string) error {
		if strings.HasPrefix(line, "#") {
			key, value, ok := strings.Cut(strings.TrimPrefix(line, "#"), ":")
			if !ok {
				return nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return errs.Wrap(errs.ErrCodeInvalidDataset, err, "line %d: header %q", lineNo, line)
			}
			header[strings.TrimSpace(key)] = n
			return nil
		}
		p, err := parsePair(line, lineNo)
		if err != nil {
			return err
		}
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		return Dataset{}, err
	}

	n, ok := header["n_nodes"]
	if !ok {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "missing '# n_nodes' header")
	}
	want := -1
	if m, ok := header["n_edges"]; ok {
		want = m
	}
	d, err := build(n, pairs, 0, want)
	if err != nil {
		return Dataset{}, err
	}
	d.K = header["k"]
	return d, nil
}

func readDIMACS(r io.Reader) (Dataset, error) {
	n, m := -1, -1
	var pairs [][2]int
	err := scanLines(r, func(lineNo int, line string) error {
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			return nil
		case "p":
			if len(fields) != 4 || (fields[1] != "edge" && fields[1] != "col") {
				return errs.New(errs.ErrCodeInvalidDataset, "line %d: malformed problem line %q", lineNo, line)
			}
			var err error
			if n, err = strconv.Atoi(fields[2]); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidDataset, err, "line %d: node count", lineNo)
			}
			if m, err = strconv.Atoi(fields[3]); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidDataset, err, "line %d: edge count", lineNo)
			}
			return nil
		case "e":
			if n < 0 {
				return errs.New(errs.ErrCodeInvalidDataset, "line %d: edge before problem line", lineNo)
			}
			p, err := parsePair(strings.Join(fields[1:], " "), lineNo)
			if err != nil {
				return err
			}
			pairs = append(pairs, p)
			return nil
		default:
			return errs.New(errs.ErrCodeInvalidDataset, "line %d: unknown DIMACS line %q", lineNo, line)
		}
	})
	if err != nil {
		return Dataset{}, err
	}
	if n < 0 {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "missing problem line")
	}
	return build(n, pairs, -1, m)
}

func readSolver(r io.Reader) (Dataset, error) {
	n, m := -1, -1
	var pairs [][2]int
	err := scanLines(r, func(lineNo int, line string) error {
		p, err := parsePair(line, lineNo)
		if err != nil {
			return err
		}
		if n < 0 {
			n, m = p[0], p[1]
			return nil
		}
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		return Dataset{}, err
	}
	if n < 0 {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "missing '<nodes> <edges>' header")
	}
	return build(n, pairs, 0, m)
}

// build validates pairs (shifted by offset) against n nodes and the expected
// edge count; wantEdges < 0 skips the count check.
func build(n int, pairs [][2]int, offset, wantEdges int) (Dataset, error) {
	if n < 0 {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "negative node count %d", n)
	}
	g := graph.New(n)
	for _, p := range pairs {
		u, v := p[0]+offset, p[1]+offset
		if _, err := g.AddEdge(u, v); err != nil {
			return Dataset{}, errs.Wrap(errs.ErrCodeInvalidDataset, err, "edge %d-%d", p[0], p[1])
		}
	}
	if wantEdges >= 0 && g.EdgeCount() != wantEdges {
		return Dataset{}, errs.New(errs.ErrCodeInvalidDataset, "found %d distinct edges, header says %d", g.EdgeCount(), wantEdges)
	}
	return Dataset{Nodes: n, Edges: g.Edges()}, nil
}

func parsePair(line string, lineNo int) ([2]int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return [2]int{}, errs.New(errs.ErrCodeInvalidDataset, "line %d: want two integers, got %q", lineNo, line)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return [2]int{}, errs.Wrap(errs.ErrCodeInvalidDataset, err, "line %d", lineNo)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return [2]int{}, errs.Wrap(errs.ErrCodeInvalidDataset, err, "line %d", lineNo)
	}
	return [2]int{a, b}, nil
}

// scanLines calls fn for every non-blank line with surrounding space trimmed.
func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

func cliqueSets(cs [][]int) [][]int {
	out := make([][]int, len(cs))
	for i, c := range cs {
		out[i] = slices.Sorted(slices.Values(c))
	}
	return out
}
