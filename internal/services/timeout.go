package services

import (
	"context"
	"time"
)

// timeoutGenerator bounds every Generate call with a deadline.
type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
}

// WithTimeout returns a Generator whose calls are cancelled after d.
// A non-positive d returns g unchanged.
func WithTimeout(g Generator, d time.Duration) Generator {
	if d <= 0 {
		return g
	}
	return &timeoutGenerator{next: g, timeout: d}
}

func (t *timeoutGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Generate(ctx, prompt)
}
