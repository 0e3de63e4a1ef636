package chart

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	algo string
	n    int
	us   int64
}

func (s sample) Series() string        { return s.algo }
func (s sample) Point() (x, y float64) { return float64(s.n), float64(s.us) }

func TestFromRecordsFirstSeenOrder(t *testing.T) {
	series := FromRecords([]sample{
		{"greedy", 20, 10},
		{"backtracking", 20, 500},
		{"greedy", 40, 15},
		{"backtracking", 40, 9000},
	})

	require.Len(t, series, 2)
	assert.Equal(t, "greedy", series[0].Name)
	assert.Equal(t, []float64{20, 40}, series[0].X)
	assert.Equal(t, []float64{10, 15}, series[0].Y)
	assert.Equal(t, "backtracking", series[1].Name)
	assert.Equal(t, []float64{500, 9000}, series[1].Y)
}

func TestRenderSize(t *testing.T) {
	series := []Series{
		{Name: "a", X: []float64{20, 40, 60}, Y: []float64{100, 400, 1600}},
		{Name: "b", X: []float64{20, 40, 60}, Y: []float64{50, 60, 70}},
	}
	img, err := Render(series, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestRenderSinglePoint(t *testing.T) {
	_, err := Render([]Series{{Name: "only", X: []float64{20}, Y: []float64{0}}}, Options{})
	assert.NoError(t, err)
}

func TestRenderNoData(t *testing.T) {
	_, err := Render(nil, DefaultOptions())
	assert.True(t, errors.Is(err, ErrNoData))

	_, err = Render([]Series{{Name: "empty"}}, DefaultOptions())
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestRenderMismatchedSeries(t *testing.T) {
	_, err := Render([]Series{{Name: "bad", X: []float64{1, 2}, Y: []float64{1}}}, DefaultOptions())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoData))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chart.png")
	series := []Series{{Name: "a", X: []float64{1, 2}, Y: []float64{3, 4}}}
	require.NoError(t, SavePNG(path, series, DefaultOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
}

func TestNiceTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, niceTicks(0, 100, 8))
	assert.Equal(t, []float64{20, 30, 40, 50, 60, 70, 80, 90, 100}, niceTicks(20, 100, 8))
	assert.Equal(t, "1500", formatTick(1500))
	assert.Equal(t, "0.5", formatTick(0.5))
}
