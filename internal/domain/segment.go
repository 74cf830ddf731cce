package domain

// Segment is one requested time range from the cut list, timestamps still
// in their human-readable form.
type Segment struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Output string `json:"output"`
}

// NormalizedSegment is a Segment whose timestamps have been resolved to
// seconds. It is immutable once created.
type NormalizedSegment struct {
	StartSeconds float64
	EndSeconds   float64
	Output       string
}

// CutList is the full configuration for one run: a single source file and
// the ordered segments to extract from it.
type CutList struct {
	Source   string    `json:"source"`
	Segments []Segment `json:"segments"`
}

// DuplicateOutputs returns every output path that appears more than once,
// in first-occurrence order. Duplicates are a configuration hazard
// (last writer wins), not an error.
func (l *CutList) DuplicateOutputs() []string {
	seen := make(map[string]int, len(l.Segments))
	var dups []string
	for _, seg := range l.Segments {
		seen[seg.Output]++
		if seen[seg.Output] == 2 {
			dups = append(dups, seg.Output)
		}
	}
	return dups
}

// Result records the outcome of one segment attempt. Index is the
// zero-based position in the cut list.
type Result struct {
	Index   int
	Segment Segment
	Err     error
}

// OK reports whether the segment was cut successfully.
func (r Result) OK() bool { return r.Err == nil }

// Report aggregates the results of a batch run. Results appear in cut
// list order and never affect one another.
type Report struct {
	Results []Result
}

// Succeeded returns the number of segments cut successfully.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of segments that failed.
func (r *Report) Failed() int { return len(r.Results) - r.Succeeded() }

// OK reports whether every attempted segment succeeded.
func (r *Report) OK() bool { return r.Failed() == 0 }
