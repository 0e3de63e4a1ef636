package chart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

// plot maps data coordinates into the drawing area.
type plot struct {
	left, right, top, bottom float64
	xTicks, yTicks           []float64
	xMin, xMax, yMin, yMax   float64
}

func newPlot(series []Series, width, height float64) *plot {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMax := math.Inf(-1)
	for _, s := range series {
		for i := range s.X {
			xMin = math.Min(xMin, s.X[i])
			xMax = math.Max(xMax, s.X[i])
			yMax = math.Max(yMax, s.Y[i])
		}
	}
	if xMin == xMax {
		xMin, xMax = xMin-1, xMax+1
	}
	yMin := 0.0
	if yMax <= yMin {
		yMax = yMin + 1
	}

	p := &plot{
		left:   marginLeft,
		right:  width - marginRight,
		top:    marginTop,
		bottom: height - marginBottom,
	}
	p.xTicks = niceTicks(xMin, xMax, tickCount)
	p.yTicks = niceTicks(yMin, yMax, tickCount)
	p.xMin, p.xMax = math.Min(xMin, p.xTicks[0]), math.Max(xMax, p.xTicks[len(p.xTicks)-1])
	p.yMin, p.yMax = yMin, math.Max(yMax, p.yTicks[len(p.yTicks)-1])
	return p
}

func (p *plot) px(x float64) float64 {
	return p.left + (x-p.xMin)/(p.xMax-p.xMin)*(p.right-p.left)
}

func (p *plot) py(y float64) float64 {
	return p.bottom - (y-p.yMin)/(p.yMax-p.yMin)*(p.bottom-p.top)
}

func (p *plot) drawGrid(dc *gg.Context) {
	dc.SetRGB(0.88, 0.88, 0.88)
	dc.SetLineWidth(1)
	for _, x := range p.xTicks {
		dc.DrawLine(p.px(x), p.top, p.px(x), p.bottom)
	}
	for _, y := range p.yTicks {
		dc.DrawLine(p.left, p.py(y), p.right, p.py(y))
	}
	dc.Stroke()
}

func (p *plot) drawAxes(dc *gg.Context, opts Options) {
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(p.left, p.top, p.right-p.left, p.bottom-p.top)
	dc.Stroke()

	for _, x := range p.xTicks {
		dc.DrawStringAnchored(formatTick(x), p.px(x), p.bottom+8, 0.5, 1)
	}
	for _, y := range p.yTicks {
		dc.DrawStringAnchored(formatTick(y), p.left-8, p.py(y), 1, 0.35)
	}

	width := float64(dc.Width())
	dc.DrawStringAnchored(opts.Title, width/2, p.top/2, 0.5, 0.5)
	dc.DrawStringAnchored(opts.XLabel, (p.left+p.right)/2, p.bottom+38, 0.5, 0.5)

	dc.Push()
	ly := (p.top + p.bottom) / 2
	dc.RotateAbout(gg.Radians(-90), 20, ly)
	dc.DrawStringAnchored(opts.YLabel, 20, ly, 0.5, 0.5)
	dc.Pop()
}

func (p *plot) drawSeries(dc *gg.Context, s Series, c color.RGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(2)
	for i := range s.X {
		x, y := p.px(s.X[i]), p.py(s.Y[i])
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
	for i := range s.X {
		dc.DrawCircle(p.px(s.X[i]), p.py(s.Y[i]), markerRadius)
	}
	dc.Fill()
}

func (p *plot) drawLegend(dc *gg.Context, series []Series) {
	const (
		rowHeight = 18.0
		swatch    = 24.0
		pad       = 8.0
	)
	labelWidth := 0.0
	for _, s := range series {
		w, _ := dc.MeasureString(s.Name)
		labelWidth = math.Max(labelWidth, w)
	}
	x, y := p.left+12, p.top+12
	boxW := pad*3 + swatch + labelWidth
	boxH := pad*2 + rowHeight*float64(len(series))

	dc.SetRGBA(1, 1, 1, 0.9)
	dc.DrawRectangle(x, y, boxW, boxH)
	dc.Fill()
	dc.SetRGB(0.7, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, boxW, boxH)
	dc.Stroke()

	for i, s := range series {
		c := palette[i%len(palette)]
		cy := y + pad + rowHeight*(float64(i)+0.5)
		dc.SetColor(c)
		dc.SetLineWidth(2)
		dc.DrawLine(x+pad, cy, x+pad+swatch, cy)
		dc.Stroke()
		dc.DrawCircle(x+pad+swatch/2, cy, markerRadius)
		dc.Fill()
		dc.SetRGB(0.15, 0.15, 0.15)
		dc.DrawStringAnchored(s.Name, x+pad*2+swatch, cy, 0, 0.35)
	}
}

// niceTicks returns evenly spaced round values covering [lo, hi].
func niceTicks(lo, hi float64, count int) []float64 {
	step := niceStep((hi-lo)/float64(count))
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step
	var ticks []float64
	for v := start; v <= end+step/2; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
