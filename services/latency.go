package services

import (
	"context"
	"time"
)

// Latency holds a fixed artificial delay applied before a write completes.
// A zero delay disables it.
type Latency struct {
	Delay time.Duration
}

// Wait blocks for the configured delay or until ctx is done
func (l Latency) Wait(ctx context.Context) error {
	if l.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(l.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
