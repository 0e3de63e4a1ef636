package bench

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
)

const (
	markerStart = "RESULT_START"
	markerEnd   = "RESULT_END"

	// sizeGaveUp marks an algorithm that did not produce a clique.
	sizeGaveUp = -1
)

// ParseLine parses one line of solver output for a graph with n nodes.
//
// ok is false for lines that carry no record: result markers, blank lines,
// lines without a comma, and records whose size is -1 (whatever their time
// field holds). Any other line that contains a comma but is not exactly
// "<name>,<int>,<int>" is an error.
func ParseLine(line string, n int) (rec Record, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.Contains(line, markerStart) || strings.Contains(line, markerEnd) {
		return Record{}, false, nil
	}
	if !strings.Contains(line, ",") {
		return Record{}, false, nil
	}

	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Record{}, false, errs.New(errs.ErrCodeParse, "want 3 comma-separated fields, got %d in %q", len(fields), line)
	}
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return Record{}, false, errs.New(errs.ErrCodeParse, "empty algorithm name in %q", line)
	}
	size, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, false, errs.Wrap(errs.ErrCodeParse, err, "clique size in %q", line)
	}
	// The time field of a -1 record is not inspected.
	if size == sizeGaveUp {
		return Record{}, false, nil
	}
	elapsed, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Record{}, false, errs.Wrap(errs.ErrCodeParse, err, "time in %q", line)
	}
	return Record{N: n, Algorithm: name, Size: size, TimeUS: elapsed}, true, nil
}

// ParseOutput parses a solver's complete stdout. Any malformed line fails
// the whole output so that a partially understood run never contributes
// records.
func ParseOutput(r io.Reader, n int) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		rec, ok, err := ParseLine(sc.Text(), n)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "line %d", lineNo)
		}
		if ok {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeParse, err, "read solver output")
	}
	return records, nil
}
