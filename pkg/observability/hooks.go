// Package observability provides hooks for metrics and tracing of dataset
// generation and benchmark runs.
//
// Library packages never import a metrics backend. They call the registered
// hooks, which default to no-ops; the CLI installs [PrometheusHooks] when a
// metrics file is requested.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBenchHooks(observability.NewPrometheusHooks())
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bench().OnSolverStart(ctx, n, path)
//	// ... run solver ...
//	observability.Bench().OnSolverComplete(ctx, n, path, records, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generate Hooks
// =============================================================================

// GenerateHooks receives events from dataset generation.
type GenerateHooks interface {
	// OnGenerate records one generated graph.
	OnGenerate(ctx context.Context, kind string, nodes, edges int, duration time.Duration, err error)

	// OnDatasetWritten records one serialized dataset file.
	OnDatasetWritten(ctx context.Context, format string, size int64)
}

// =============================================================================
// Bench Hooks
// =============================================================================

// BenchHooks receives events from the benchmark harness.
type BenchHooks interface {
	// OnSolverStart fires before the solver is invoked on a test file.
	OnSolverStart(ctx context.Context, n int, path string)

	// OnSolverComplete fires after the solver exits and its output is parsed.
	OnSolverComplete(ctx context.Context, n int, path string, records int, duration time.Duration, err error)

	// OnRecord fires for every accepted benchmark record.
	OnRecord(ctx context.Context, algorithm string, n, size int, elapsedUS int64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerateHooks is a no-op implementation of GenerateHooks.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnGenerate(context.Context, string, int, int, time.Duration, error) {}
func (NoopGenerateHooks) OnDatasetWritten(context.Context, string, int64)                   {}

// NoopBenchHooks is a no-op implementation of BenchHooks.
type NoopBenchHooks struct{}

func (NoopBenchHooks) OnSolverStart(context.Context, int, string) {}
func (NoopBenchHooks) OnSolverComplete(context.Context, int, string, int, time.Duration, error) {
}
func (NoopBenchHooks) OnRecord(context.Context, string, int, int, int64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generateHooks GenerateHooks = NoopGenerateHooks{}
	benchHooks    BenchHooks    = NoopBenchHooks{}
	hooksMu       sync.RWMutex
)

// SetGenerateHooks registers custom generation hooks.
// This should be called once at application startup.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// SetBenchHooks registers custom benchmark hooks.
// This should be called once at application startup.
func SetBenchHooks(h BenchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		benchHooks = h
	}
}

// Generate returns the registered generation hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Bench returns the registered benchmark hooks.
func Bench() BenchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return benchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generateHooks = NoopGenerateHooks{}
	benchHooks = NoopBenchHooks{}
}
