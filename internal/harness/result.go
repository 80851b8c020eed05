// Package harness runs the fixed verification sequence over the mocked
// pipeline and aggregates a pass/fail/error tally.
package harness

import "math"

// Status classifies a check outcome. The FAIL/ERROR split is load-bearing:
// FAIL means the logic ran and found a problem; ERROR means the logic itself
// could not complete because a collaborator faulted.
type Status string

const (
	StatusPass  Status = "PASS"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

// Result is one check's outcome.
type Result struct {
	Name    string `json:"test"`
	Status  Status `json:"status"`
	Details any    `json:"details,omitempty"`
	Err     error  `json:"-"`
}

// Report collects results for one run. It is an explicit caller-owned value
// threaded through the runner, not hidden runner state, so concurrent runs
// never share a tally.
type Report struct {
	results []Result
}

func NewReport() *Report {
	return &Report{}
}

// Add appends a result.
func (r *Report) Add(result Result) {
	r.results = append(r.results, result)
}

// Results returns the collected results in execution order.
func (r *Report) Results() []Result {
	return append([]Result{}, r.results...)
}

// Tally counts results by status.
func (r *Report) Tally() (passed, failed, errored int) {
	for _, result := range r.results {
		switch result.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		default:
			errored++
		}
	}
	return passed, failed, errored
}

// SuccessRate is the percentage of checks that passed, 0 for an empty run.
func (r *Report) SuccessRate() int {
	if len(r.results) == 0 {
		return 0
	}
	passed, _, _ := r.Tally()
	return int(math.Round(float64(passed) / float64(len(r.results)) * 100))
}

// Failed reports whether any check did not pass.
func (r *Report) Failed() bool {
	passed, _, _ := r.Tally()
	return passed != len(r.results)
}
