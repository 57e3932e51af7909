package probe

import "time"

// Outcome is the final classification of a single endpoint probe.
type Outcome string

const (
	// OutcomeSuccess indicates the server answered with a status below 400
	OutcomeSuccess Outcome = "success"
	// OutcomeError indicates an HTTP error status (>= 400) or a
	// transport-level failure other than a timeout
	OutcomeError Outcome = "error"
	// OutcomeTimeout indicates the request hit the configured deadline
	OutcomeTimeout Outcome = "timeout"
)

// Result represents the outcome of probing one endpoint.
// It's designed to be sent through channels from worker goroutines
// to a coordinator that aggregates the tally.
type Result struct {
	// URL is the endpoint that was probed
	URL string

	// Outcome is the classification of this probe
	Outcome Outcome

	// Code is the HTTP status code, or 0 when no response arrived
	// (timeouts and transport failures carry no code)
	Code int

	// Elapsed is the wall time from request start to classification
	Elapsed time.Duration

	// Err holds the failure behind an error or timeout outcome as a
	// *ProbeError. Nil for successful probes.
	Err error
}

// Tally holds running counters of categorized probe outcomes.
// Each completed probe increments exactly one counter, so
// Success+Error+Timeout always equals the number of probes observed.
type Tally struct {
	Success int
	Error   int
	Timeout int
}

// Add records one outcome in the tally.
func (t *Tally) Add(o Outcome) {
	switch o {
	case OutcomeSuccess:
		t.Success++
	case OutcomeTimeout:
		t.Timeout++
	default:
		t.Error++
	}
}

// Total returns the number of outcomes recorded so far.
func (t *Tally) Total() int {
	return t.Success + t.Error + t.Timeout
}
