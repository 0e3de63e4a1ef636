package dataset

import (
	"path/filepath"
	"slices"
	"strings"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

// Format identifies an on-disk encoding.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatEdgeList Format = "edge_list"
	FormatDIMACS   Format = "dimacs"
	FormatSolver   Format = "solver"
)

var extensions = map[Format]string{
	FormatJSON:     ".json",
	FormatEdgeList: ".txt",
	FormatDIMACS:   ".dimacs",
	FormatSolver:   ".in",
}

var formatAliases = map[string]Format{
	"json":      FormatJSON,
	"edge_list": FormatEdgeList,
	"edgelist":  FormatEdgeList,
	"txt":       FormatEdgeList,
	"dimacs":    FormatDIMACS,
	"solver":    FormatSolver,
	"in":        FormatSolver,
}

// AllFormats returns every supported format in a stable order.
func AllFormats() []Format {
	return []Format{FormatJSON, FormatEdgeList, FormatDIMACS, FormatSolver}
}

// Extension returns the file extension (with dot) for f, or "" if unknown.
func (f Format) Extension() string { return extensions[f] }

// ParseFormat resolves a format name or alias such as "txt" or "in".
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown dataset format %q (want json, edge_list, dimacs or solver)", s)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for f, e := range extensions {
		if e == ext {
			return f, nil
		}
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer dataset format from %q", path)
}

// Dataset is an immutable snapshot of a graph and its planted cliques.
type Dataset struct {
	Nodes   int          // Node count; ids are 0..Nodes-1
	Edges   []graph.Edge // Canonical edges, sorted
	K       int          // Declared clique size
	Cliques [][]int      // Planted cliques, each sorted ascending
}

// New snapshots g. Edges and cliques are copied, so later changes to g or to
// the cliques slice do not affect the dataset.
func New(g *graph.Graph, k int, cliques [][]int) Dataset {
	cs := make([][]int, len(cliques))
	for i, c := range cliques {
		cs[i] = slices.Sorted(slices.Values(c))
	}
	return Dataset{
		Nodes:   g.NodeCount(),
		Edges:   g.Edges(),
		K:       k,
		Cliques: cs,
	}
}

// EdgeCount returns the number of edges.
func (d Dataset) EdgeCount() int { return len(d.Edges) }

// Graph rebuilds a mutable graph from the snapshot.
func (d Dataset) Graph() (*graph.Graph, error) {
	g := graph.New(d.Nodes)
	for _, e := range d.Edges {
		if _, err := g.AddEdge(e.U, e.V); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidDataset, err, "edge %d-%d", e.U, e.V)
		}
	}
	return g, nil
}
