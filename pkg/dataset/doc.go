// Package dataset serializes graphs with their planted cliques to disk.
//
// A [Dataset] is an immutable snapshot of a graph: node count, sorted edge
// list, the embedded cliques and the declared clique size K. All formats
// describe the same graph under the same node labels:
//
//   - [FormatJSON] (.json): counts, k, edge pairs, cliques and the full
//     N×N adjacency matrix derived from the edges
//   - [FormatEdgeList] (.txt): three "# key: value" header lines, then "u v"
//   - [FormatDIMACS] (.dimacs): "p edge N M", then "e u+1 v+1" (1-indexed)
//   - [FormatSolver] (.in): "N M", then "u v"; the clique solver's input
//
// DIMACS is the only format that shifts node ids; the shift is applied to
// every endpoint on write and undone on read.
//
// # Writing
//
//	ds := dataset.New(g, 5, [][]int{clique})
//	err := dataset.Save(ds, "datasets/easy_small.json", dataset.FormatJSON)
//	paths, err := dataset.SaveAll(ds, "datasets", "easy_small", dataset.AllFormats()...)
//
// Parent directories are created as needed. Edges are written in sorted
// order, so saving an unmodified graph twice yields identical bytes.
//
// # Reading
//
// [Load] and [Read] decode every format back into a Dataset. JSON input is
// rebuilt from its adjacency matrix, which must be square, symmetric and have
// an empty diagonal; a disagreeing edge list is rejected.
package dataset
