package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/observability"
)

// Invoker runs solver on the test file at path and returns its stdout.
// A non-nil error may be returned together with output that is still usable.
type Invoker func(ctx context.Context, solver, path string) ([]byte, error)

// ExecInvoker runs the solver as a child process. No deadline is imposed
// beyond ctx.
func ExecInvoker(ctx context.Context, solver, path string) ([]byte, error) {
	return exec.CommandContext(ctx, solver, path).Output()
}

// Runner executes the solver over test files one at a time.
type Runner struct {
	Solver string
	Logger *log.Logger
	Invoke Invoker
}

// NewRunner creates a runner for the solver binary at path.
// If logger is nil, log.Default() is used.
func NewRunner(solver string, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Solver: SolverPath(solver),
		Logger: logger,
		Invoke: ExecInvoker,
	}
}

// FileResult is the outcome of running the solver on one test file.
type FileResult struct {
	File     TestFile
	Records  []Record
	Duration time.Duration
	Err      error // Set when the file contributed no records because of a failure
	ExitErr  error // Non-zero exit whose output was still usable
}

// Run executes the solver on every file and returns the accumulated records
// in file order. Failures are logged and never abort the run.
func (r *Runner) Run(ctx context.Context, files []TestFile) []Record {
	var records []Record
	for _, res := range r.RunFiles(ctx, files) {
		records = append(records, res.Records...)
	}
	return records
}

// RunFiles is like Run but reports the outcome of each file. It stops early
// only when ctx is cancelled; files not reached are omitted.
func (r *Runner) RunFiles(ctx context.Context, files []TestFile) []FileResult {
	invoke := r.Invoke
	if invoke == nil {
		invoke = ExecInvoker
	}
	hooks := observability.Bench()

	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		if ctx.Err() != nil {
			r.Logger.Warn("benchmark interrupted", "remaining", len(files)-len(results))
			break
		}
		res := r.runFile(ctx, invoke, hooks, f)
		results = append(results, res)
	}
	return results
}

func (r *Runner) runFile(ctx context.Context, invoke Invoker, hooks observability.BenchHooks, f TestFile) FileResult {
	res := FileResult{File: f}
	r.Logger.Info("running solver", "n", f.N, "file", f.Path)
	hooks.OnSolverStart(ctx, f.N, f.Path)

	start := time.Now()
	out, runErr := invoke(ctx, r.Solver, f.Path)
	res.Duration = time.Since(start)

	defer func() {
		hooks.OnSolverComplete(ctx, f.N, f.Path, len(res.Records), res.Duration, res.Err)
	}()

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
	case errors.As(runErr, &exitErr) && len(out) > 0 && ctx.Err() == nil:
		res.ExitErr = runErr
	default:
		res.Err = errs.Wrap(errs.ErrCodeSolverFailed, runErr, "run %s on %s", r.Solver, f.Path)
		r.Logger.Error("solver failed", "n", f.N, "file", f.Path, "err", runErr)
		return res
	}

	records, err := ParseOutput(bytes.NewReader(out), f.N)
	if err != nil {
		res.Err = fmt.Errorf("parse output for %s: %w", f.Path, err)
		r.Logger.Error("malformed solver output", "n", f.N, "file", f.Path, "err", err)
		return res
	}
	if res.ExitErr != nil {
		r.Logger.Warn("solver exited with error; keeping parsed results", "n", f.N, "file", f.Path, "err", res.ExitErr, "records", len(records))
	}

	res.Records = records
	for _, rec := range records {
		hooks.OnRecord(ctx, rec.Algorithm, rec.N, rec.Size, rec.TimeUS)
		r.Logger.Debug("result", "algorithm", rec.Algorithm, "n", rec.N, "size", rec.Size, "time_us", rec.TimeUS)
	}
	r.Logger.Info("solver done", "n", f.N, "records", len(records), "duration", res.Duration.Round(time.Millisecond))
	return res
}

// SolverPath anchors a bare solver name to the working directory so that it
// names the same file CheckSolver inspects instead of a $PATH lookup.
func SolverPath(solver string) string {
	if solver == "" || filepath.IsAbs(solver) || strings.ContainsAny(solver, "/"+string(filepath.Separator)) {
		return solver
	}
	return "." + string(filepath.Separator) + solver
}

// CheckSolver verifies that path names an existing regular file.
func CheckSolver(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeSolverNotFound, err, "%s not found; build the solver first", path)
	}
	if !info.Mode().IsRegular() {
		return errs.New(errs.ErrCodeSolverNotFound, "%s is not a regular file", path)
	}
	return nil
}
