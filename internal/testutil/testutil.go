package testutil

import (
	"context"

	"loadprobe/internal/probe"
)

// MockProber is a mock implementation of the coordinator's Prober seam
// for testing
type MockProber struct {
	ProbeFunc func(ctx context.Context) probe.Result
	URLFunc   func() string
}

// Probe implements the Prober interface
func (m *MockProber) Probe(ctx context.Context) probe.Result {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx)
	}
	return probe.Result{URL: m.URL(), Outcome: probe.OutcomeSuccess, Code: 200}
}

// URL implements the Prober interface
func (m *MockProber) URL() string {
	if m.URLFunc != nil {
		return m.URLFunc()
	}
	return "http://mock.invalid"
}

// NewMockProber creates a simple mock prober with a predefined result
func NewMockProber(url string, outcome probe.Outcome, code int, err error) *MockProber {
	return &MockProber{
		ProbeFunc: func(ctx context.Context) probe.Result {
			return probe.Result{
				URL:     url,
				Outcome: outcome,
				Code:    code,
				Err:     err,
			}
		},
		URLFunc: func() string {
			return url
		},
	}
}
