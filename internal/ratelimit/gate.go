package ratelimit

import (
	"context"
	"fmt"
	"time"

	"flowledger/internal/metrics"

	"golang.org/x/time/rate"
)

// ExplorerInterval is the minimum spacing between two explorer API calls.
const ExplorerInterval = 250 * time.Millisecond

// Gate admits one call per interval across every goroutine sharing it.
type Gate struct {
	limiter *rate.Limiter
	name    string
}

func NewGate(name string, interval time.Duration) *Gate {
	return &Gate{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		name:    name,
	}
}

// Wait blocks until the gate admits one call, or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	r := g.limiter.Reserve()
	if !r.OK() {
		return fmt.Errorf("rate: cannot reserve slot on %s gate", g.name)
	}

	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	metrics.RateGateWaits.WithLabelValues(g.name).Inc()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
