package rootfind

import "fmt"

// IterationEntry records one iteration of a root search: the abscissas
// evaluated that iteration and the corresponding function values.
// X and FX always have equal length.
type IterationEntry struct {
	// Iteration is the 1-based iteration index, strictly increasing
	// within one search.
	Iteration int
	// X holds the points evaluated in this iteration.
	X []float64
	// FX holds f evaluated at each point of X, in the same order.
	FX []float64
}

// ConvergenceLog is an append-only, resettable record of a root
// search, used purely for diagnostics. The driver (or the Brent loop)
// appends one entry per iteration when logging is enabled and resets
// the log at the start of every search, so only the most recent
// search's trace is retained.
type ConvergenceLog struct {
	entries []IterationEntry
}

// Add appends an iteration entry. The slices are copied, so the caller
// may reuse its buffers. Add panics when x and fx differ in length;
// that is a programmer error, not a runtime condition — given
// well-formed inputs the append is total.
func (l *ConvergenceLog) Add(iteration int, x, fx []float64) {
	if len(x) != len(fx) {
		panic(fmt.Sprintf("rootfind: log entry with %d points but %d values", len(x), len(fx)))
	}
	entry := IterationEntry{
		Iteration: iteration,
		X:         append([]float64(nil), x...),
		FX:        append([]float64(nil), fx...),
	}
	l.entries = append(l.entries, entry)
}

// Entries returns all logged iterations in append order. The returned
// slice is the log's backing storage; treat it as read-only.
func (l *ConvergenceLog) Entries() []IterationEntry {
	return l.entries
}

// Len reports the number of logged iterations.
func (l *ConvergenceLog) Len() int {
	return len(l.entries)
}

// Reset clears the log for reuse.
func (l *ConvergenceLog) Reset() {
	l.entries = l.entries[:0]
}
