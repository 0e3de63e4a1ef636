package bench

// Record is one measurement: an algorithm's clique size and running time on
// a graph with N nodes.
type Record struct {
	N         int
	Algorithm string
	Size      int
	TimeUS    int64
}

// Series returns the algorithm name, grouping records into chart lines.
func (r Record) Series() string { return r.Algorithm }

// Point returns (N, TimeUS) as chart coordinates.
func (r Record) Point() (x, y float64) { return float64(r.N), float64(r.TimeUS) }

// TestFile is a solver input file and the node count it was generated with.
type TestFile struct {
	N    int
	Path string
}
