package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds every request with a deadline so a stalled
// upstream cannot hold a grading request open past Config.Timeout.
type timeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a Provider so each Generate call runs under a
// deadline. A non-positive limit returns the provider unchanged.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, limit: limit}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
