// Package render draws datasets as node-link diagrams using Graphviz.
//
// [ToDOT] turns a dataset into an undirected DOT graph in which the planted
// clique members are filled with a color per clique and the edges inside a
// clique are drawn bold. [Render] lays the graph out in process with
// go-graphviz and encodes it as SVG or PNG:
//
//	dot := render.ToDOT(ds)
//	svg, err := render.RenderSVG(dot)
//	png, err := render.Render(ctx, dot, render.FormatPNG, render.Options{Layout: "circo"})
//
// The default layout engine is neato. Graphs with more than a few hundred
// edges are rendered but become hard to read.
package render
