package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cliquebench/pkg/dataset"
	errs "github.com/matzehuels/cliquebench/pkg/errors"
)

// Format is an output image format.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat resolves an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown image format %q (want svg or png)", s)
}

// Options configures rendering.
type Options struct {
	// Layout is the Graphviz layout engine. Empty means neato, which suits
	// undirected graphs without a natural hierarchy.
	Layout string
}

// cliquePalette fills nodes of the i-th clique. Nodes in several cliques use
// the color of the first one.
var cliquePalette = []string{"#f4a261", "#2a9d8f", "#e76f51", "#8ab17d", "#e9c46a", "#6d597a"}

// ToDOT converts a dataset to an undirected Graphviz graph.
// Clique members are filled and edges between members of the same clique
// are drawn bold.
func ToDOT(ds dataset.Dataset) string {
	member := make(map[int]int)
	for i, c := range ds.Cliques {
		for _, id := range c {
			if _, ok := member[id]; !ok {
				member[id] = i
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, width=0.4, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#9a9a9a\"];\n")
	buf.WriteString("\n")

	for id := range ds.Nodes {
		if c, ok := member[id]; ok {
			fmt.Fprintf(&buf, "  %d [fillcolor=%q];\n", id, cliquePalette[c%len(cliquePalette)])
		} else {
			fmt.Fprintf(&buf, "  %d;\n", id)
		}
	}

	buf.WriteString("\n")
	for _, e := range ds.Edges {
		if sameClique(ds.Cliques, e.U, e.V) {
			fmt.Fprintf(&buf, "  %d -- %d [penwidth=2.5, color=black];\n", e.U, e.V)
		} else {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func sameClique(cliques [][]int, u, v int) bool {
	for _, c := range cliques {
		_, hasU := slices.BinarySearch(c, u)
		_, hasV := slices.BinarySearch(c, v)
		if hasU && hasV {
			return true
		}
	}
	return false
}

// Render lays out a DOT graph and encodes it in format f.
func Render(ctx context.Context, dot string, f Format, opts Options) ([]byte, error) {
	var gvFormat graphviz.Format
	switch f {
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown image format %q", f)
	}
	layout := graphviz.NEATO
	if opts.Layout != "" {
		layout = graphviz.Layout(opts.Layout)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(layout)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}
	if f == FormatSVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// RenderSVG renders a DOT graph to SVG with the default layout.
func RenderSVG(dot string) ([]byte, error) {
	return Render(context.Background(), dot, FormatSVG, Options{})
}

// RenderPNG renders a DOT graph to PNG with the default layout.
func RenderPNG(dot string) ([]byte, error) {
	return Render(context.Background(), dot, FormatPNG, Options{})
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales to its
// container: origin at zero and width/height equal to the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
