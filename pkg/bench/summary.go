package bench

// Summary aggregates the records of one algorithm.
type Summary struct {
	Algorithm  string
	Runs       int
	MeanTimeUS float64
	MaxTimeUS  int64
	MaxSize    int
	MaxN       int
}

// Summarize groups records by algorithm in first-seen order.
func Summarize(records []Record) []Summary {
	index := make(map[string]int)
	var (
		out    []Summary
		totals []int64
	)
	for _, r := range records {
		i, ok := index[r.Algorithm]
		if !ok {
			i = len(out)
			index[r.Algorithm] = i
			out = append(out, Summary{Algorithm: r.Algorithm})
			totals = append(totals, 0)
		}
		s := &out[i]
		s.Runs++
		totals[i] += r.TimeUS
		s.MaxTimeUS = max(s.MaxTimeUS, r.TimeUS)
		s.MaxSize = max(s.MaxSize, r.Size)
		s.MaxN = max(s.MaxN, r.N)
	}
	for i := range out {
		out[i].MeanTimeUS = float64(totals[i]) / float64(out[i].Runs)
	}
	return out
}
