// Package bench drives an external clique solver over a set of test files
// and aggregates its timing output.
//
// # Solver Protocol
//
// The solver is invoked as "solver <path>" on a file in the solver input
// format (see the dataset package). It reports one line per algorithm on
// stdout:
//
//	RESULT_START
//	backtracking,12,5310
//	greedy,9,41
//	RESULT_END
//
// Each line is "<algorithm>,<clique size>,<microseconds>". The marker lines,
// blank lines and lines without a comma are ignored. A size of -1 means the
// algorithm gave up and the line is dropped.
//
// # Running
//
//	runner := bench.NewRunner("./kclique", logger)
//	records := runner.Run(ctx, files)
//	plotted, err := bench.SaveAndPlot(records, "results.csv", "clique_benchmark.png")
//
// Files are processed one at a time. A file whose invocation fails or whose
// output is malformed is logged and contributes no records; the run always
// continues with the next file.
//
// # Results
//
// Records are written as CSV with the header "N,Algorithm,Size,TimeUS".
// [Manifest] captures run provenance (run id, solver, timings and a digest of
// every input file) next to the results.
package bench
