package probe

import (
	"time"

	"resty.dev/v3"
)

// NewHTTPClient creates the HTTP client used for endpoint probes.
// Every endpoint is attempted exactly once, so no retry conditions are
// installed; the only bound on a request is the per-request timeout.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "*/*")
}
