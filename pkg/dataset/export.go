package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
)

// document is the JSON wire form of a Dataset.
type document struct {
	Nodes    int      `json:"n_nodes"`
	Edges    int      `json:"n_edges"`
	K        int      `json:"k"`
	EdgeList [][2]int `json:"edges"`
	Cliques  [][]int  `json:"cliques"`
	Matrix   [][]int  `json:"adjacency_matrix"`
}

// Write encodes d in format f and writes it to w.
func Write(w io.Writer, d Dataset, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, d)
	case FormatEdgeList:
		return writeLines(w, d, func(bw *bufio.Writer) {
			fmt.Fprintf(bw, "# n_nodes: %d\n", d.Nodes)
			fmt.Fprintf(bw, "# n_edges: %d\n", d.EdgeCount())
			fmt.Fprintf(bw, "# k: %d\n", d.K)
		}, "%d %d\n", 0)
	case FormatDIMACS:
		return writeLines(w, d, func(bw *bufio.Writer) {
			fmt.Fprintf(bw, "p edge %d %d\n", d.Nodes, d.EdgeCount())
		}, "e %d %d\n", 1)
	case FormatSolver:
		return writeLines(w, d, func(bw *bufio.Writer) {
			fmt.Fprintf(bw, "%d %d\n", d.Nodes, d.EdgeCount())
		}, "%d %d\n", 0)
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown dataset format %q", f)
	}
}

func writeJSON(w io.Writer, d Dataset) error {
	doc := document{
		Nodes:    d.Nodes,
		Edges:    d.EdgeCount(),
		K:        d.K,
		EdgeList: make([][2]int, len(d.Edges)),
		Cliques:  d.Cliques,
		Matrix:   AdjacencyMatrix(d),
	}
	for i, e := range d.Edges {
		doc.EdgeList[i] = [2]int{e.U, e.V}
	}
	if doc.Cliques == nil {
		doc.Cliques = [][]int{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// writeLines emits a header followed by one formatted line per edge with
// both endpoints shifted by offset.
func writeLines(w io.Writer, d Dataset, header func(*bufio.Writer), edgeFormat string, offset int) error {
	bw := bufio.NewWriter(w)
	header(bw)
	for _, e := range d.Edges {
		fmt.Fprintf(bw, edgeFormat, e.U+offset, e.V+offset)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes d to path in format f, creating parent directories.
func Save(d Dataset, path string, f Format) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, d, f); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// SaveAll writes d once per format as <dir>/<name><ext> and returns the
// written paths in format order.
func SaveAll(d Dataset, dir, name string, formats ...Format) ([]string, error) {
	if err := errs.ValidateCaseName(name); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		ext := f.Extension()
		if ext == "" {
			return paths, errs.New(errs.ErrCodeInvalidFormat, "unknown dataset format %q", f)
		}
		path := filepath.Join(dir, name+ext)
		if err := Save(d, path, f); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
