// Package chart draws line charts of benchmark timings as PNG images.
//
// Each [Series] is drawn as a line with circle markers in its own color.
// The chart has a title, axis labels, a background grid and a legend in the
// upper-left corner. Rendering uses fogleman/gg with its built-in bitmap
// font, so no font files are needed.
package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("chart: no data")

// Series is one named line. X and Y must have the same length.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Sample is a single measurement that belongs to a named series.
type Sample interface {
	Series() string
	Point() (x, y float64)
}

// FromRecords groups samples into series in first-seen order, keeping the
// sample order within each series.
func FromRecords[S Sample](samples []S) []Series {
	index := make(map[string]int)
	var out []Series
	for _, s := range samples {
		name := s.Series()
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, Series{Name: name})
		}
		x, y := s.Point()
		out[i].X = append(out[i].X, x)
		out[i].Y = append(out[i].Y, y)
	}
	return out
}

// Options controls the chart's size and labels.
type Options struct {
	Width  int
	Height int
	Title  string
	XLabel string
	YLabel string
}

// DefaultOptions returns the benchmark chart settings.
func DefaultOptions() Options {
	return Options{
		Width:  1000,
		Height: 600,
		Title:  "Algorithm Performance on Hard Graphs",
		XLabel: "Number of Nodes (N)",
		YLabel: "Time (microseconds)",
	}
}

// palette follows the common tab10 ordering.
var palette = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

const (
	marginLeft   = 90.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 60.0
	markerRadius = 4.0
	tickCount    = 8
)

// Render draws the series and returns the image.
func Render(series []Series, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if err := validate(series); err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	p := newPlot(series, float64(opts.Width), float64(opts.Height))
	p.drawGrid(dc)
	p.drawAxes(dc, opts)
	for i, s := range series {
		p.drawSeries(dc, s, palette[i%len(palette)])
	}
	p.drawLegend(dc, series)

	return dc.Image(), nil
}

// SavePNG renders the series to a PNG file at path, creating parent directories.
func SavePNG(path string, series []Series, opts Options) error {
	img, err := Render(series, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func validate(series []Series) error {
	points := 0
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("chart: series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		points += len(s.X)
	}
	if points == 0 {
		return ErrNoData
	}
	return nil
}
