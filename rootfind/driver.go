package rootfind

// iterator is the strategy-agnostic driver behind Bisection, Secant
// and Newton-Raphson. It owns the strategy and the borrowed function
// handles, evaluates f (and f', when supplied) at the points the
// strategy requests, records the convergence trace, and enforces the
// iteration budget. It performs no I/O.
type iterator struct {
	fn     Func
	deriv  Func // nil for derivative-free methods
	finder strategy

	numIt          int
	maxIterations  int
	logConvergence bool
	log            ConvergenceLog
}

func newIterator(fn, deriv Func, finder strategy, maxIterations int, logConvergence bool) *iterator {
	return &iterator{
		fn:             fn,
		deriv:          deriv,
		finder:         finder,
		numIt:          1,
		maxIterations:  maxIterations,
		logConvergence: logConvergence,
	}
}

// FindRoot drives the strategy to completion. Per iteration it
// evaluates f at every current point (and f' at every point when a
// derivative was supplied), logs the evaluations when enabled, asks
// the strategy whether to stop, and only then checks the iteration
// budget — so a stop decision on the final iteration still wins over
// ErrMaxIterations. Exceeding the budget is always a reported failure,
// never a best-effort answer.
//
// FindRoot resets the convergence log but not the strategy state or
// the iteration counter; the finder is single-use.
func (it *iterator) FindRoot() (float64, error) {
	it.log.Reset()
	args := it.finder.initialPoints()
	for {
		fx := make([]float64, len(args))
		for i, x := range args {
			fx[i] = it.fn(x)
		}
		var dfx []float64
		if it.deriv != nil {
			dfx = make([]float64, len(args))
			for i, x := range args {
				dfx[i] = it.deriv(x)
			}
		}
		if it.logConvergence {
			it.log.Add(it.numIt, args, fx)
		}
		if root, done, err := it.finder.shouldStop(fx, dfx); done {
			return root, err
		}
		if it.numIt == it.maxIterations {
			return 0, ErrMaxIterations
		}
		it.numIt++
		args = it.finder.nextPoints(fx, dfx)
	}
}

// ConvergenceLog returns the trace accumulated by the most recent
// FindRoot call (empty when logging was disabled or no search has run).
func (it *iterator) ConvergenceLog() *ConvergenceLog {
	return &it.log
}
