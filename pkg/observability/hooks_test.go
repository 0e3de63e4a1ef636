package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerateHooks{}
	g.OnGenerate(ctx, "planted", 20, 140, time.Millisecond, nil)
	g.OnDatasetWritten(ctx, "json", 2048)

	b := NoopBenchHooks{}
	b.OnSolverStart(ctx, 20, "tests/hard_20.in")
	b.OnSolverComplete(ctx, 20, "tests/hard_20.in", 3, time.Second, nil)
	b.OnRecord(ctx, "Exact", 20, 5, 1200)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Error("Generate() should return NoopGenerateHooks by default")
	}
	if _, ok := Bench().(NoopBenchHooks); !ok {
		t.Error("Bench() should return NoopBenchHooks by default")
	}

	customGenerate := &testGenerateHooks{}
	SetGenerateHooks(customGenerate)
	if Generate() != customGenerate {
		t.Error("SetGenerateHooks should set custom hooks")
	}

	customBench := &testBenchHooks{}
	SetBenchHooks(customBench)
	if Bench() != customBench {
		t.Error("SetBenchHooks should set custom hooks")
	}

	Reset()
	if _, ok := Bench().(NoopBenchHooks); !ok {
		t.Error("Reset() should restore NoopBenchHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testBenchHooks{}
	SetBenchHooks(custom)
	SetBenchHooks(nil)

	if Bench() != custom {
		t.Error("SetBenchHooks(nil) should be ignored")
	}

	Reset()
}

type testGenerateHooks struct{ NoopGenerateHooks }
type testBenchHooks struct{ NoopBenchHooks }
