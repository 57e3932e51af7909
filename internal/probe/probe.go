package probe

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"time"

	"resty.dev/v3"

	"loadprobe/internal/ratelimit"
)

// EndpointProber issues a single GET against one fixed endpoint and
// classifies the outcome. The response body is ignored entirely; only
// the status code and timing matter.
type EndpointProber struct {
	url    string
	host   string
	client *resty.Client
	limits *ratelimit.Limiter
}

// NewEndpointProber creates a prober for the given endpoint.
// The client is shared across probers so connection pooling and the
// per-request timeout are configured once.
func NewEndpointProber(endpoint string, client *resty.Client, limits *ratelimit.Limiter) *EndpointProber {
	host := ""
	if u, err := url.Parse(endpoint); err == nil {
		host = u.Host
	}

	return &EndpointProber{
		url:    endpoint,
		host:   host,
		client: client,
		limits: limits,
	}
}

// URL returns the endpoint this prober targets.
func (p *EndpointProber) URL() string {
	return p.url
}

// Probe performs one GET against the endpoint and returns the classified
// result. Failures are captured into the Result and never returned as an
// error; each endpoint is attempted exactly once.
func (p *EndpointProber) Probe(ctx context.Context) Result {
	slog.Info("requesting endpoint", "url", p.url)

	if p.limits != nil {
		if err := p.limits.Wait(ctx, p.host); err != nil {
			return Result{
				URL:     p.url,
				Outcome: OutcomeError,
				Err:     NewTransportError(err),
			}
		}
	}

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.url)
	elapsed := time.Since(start)

	if err != nil {
		if isTimeout(err) {
			slog.Warn("endpoint timed out", "url", p.url, "elapsed", elapsed)
			return Result{
				URL:     p.url,
				Outcome: OutcomeTimeout,
				Elapsed: elapsed,
				Err:     NewTimeoutError(err),
			}
		}

		slog.Error("endpoint request failed", "url", p.url, "error", err)
		return Result{
			URL:     p.url,
			Outcome: OutcomeError,
			Elapsed: elapsed,
			Err:     NewTransportError(err),
		}
	}

	code := resp.StatusCode()
	outcome := ClassifyStatus(code)
	slog.Info("endpoint responded",
		"url", p.url,
		"status", code,
		"outcome", outcome,
		"elapsed", elapsed)

	result := Result{
		URL:     p.url,
		Outcome: outcome,
		Code:    code,
		Elapsed: elapsed,
	}
	if outcome == OutcomeError {
		result.Err = NewStatusError(code)
	}
	return result
}

// isTimeout reports whether err was caused by the request deadline rather
// than some other transport failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
