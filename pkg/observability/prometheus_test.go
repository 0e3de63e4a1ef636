package observability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusHooksCounters(t *testing.T) {
	ctx := context.Background()
	h := NewPrometheusHooks()

	h.OnGenerate(ctx, "planted", 20, 140, time.Millisecond, nil)
	h.OnGenerate(ctx, "planted", 20, 0, 0, errors.New("k > n"))
	h.OnDatasetWritten(ctx, "dimacs", 100)
	h.OnDatasetWritten(ctx, "dimacs", 50)
	h.OnSolverComplete(ctx, 20, "a.in", 2, 10*time.Millisecond, nil)
	h.OnSolverComplete(ctx, 40, "b.in", 0, time.Millisecond, errors.New("boom"))
	h.OnRecord(ctx, "Exact", 20, 5, 1200)
	h.OnRecord(ctx, "Exact", 40, 7, 5000)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.graphsGenerated.WithLabelValues("planted", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.graphsGenerated.WithLabelValues("planted", "error")))
	assert.Equal(t, 150.0, testutil.ToFloat64(h.datasetBytes.WithLabelValues("dimacs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.solverRuns.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.solverRuns.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(h.records.WithLabelValues("Exact")))
	assert.Equal(t, 5000.0, testutil.ToFloat64(h.solverTimeUS.WithLabelValues("Exact", "40")))
	assert.Equal(t, 7.0, testutil.ToFloat64(h.cliqueSize.WithLabelValues("Exact", "40")))
}

func TestPrometheusHooksWriteTextfile(t *testing.T) {
	h := NewPrometheusHooks()
	h.OnRecord(context.Background(), "GreedyDegree", 60, 4, 80)

	path := filepath.Join(t.TempDir(), "cliquebench.prom")
	require.NoError(t, h.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `cliquebench_records_total{algorithm="GreedyDegree"} 1`))
}
