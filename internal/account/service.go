package account

import (
	"context"
	"time"
)

// Service performs account updates against the backing system. The host
// persists the result only after a call succeeds.
type Service interface {
	ChangeEmail(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, password string) error
	UpdateProfile(ctx context.Context, p ProfilePatch) error
}

// Simulated is a Service with no backend. Every call waits Delay and succeeds.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) ChangeEmail(ctx context.Context, _ string) error {
	return s.wait(ctx)
}

func (s Simulated) ChangePassword(ctx context.Context, _ string) error {
	return s.wait(ctx)
}

func (s Simulated) UpdateProfile(ctx context.Context, _ ProfilePatch) error {
	return s.wait(ctx)
}

func (s Simulated) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
