// Package jobs holds background tasks tied to the process lifetime.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

// ExpirySweeper periodically deactivates discounts whose end date has
// passed. Failures are logged and swallowed; nothing awaits a sweep result
// and a bad cycle must not stop the schedule.
type ExpirySweeper struct {
	sweep    func(ctx context.Context) (int, error)
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewExpirySweeper(
	sweep func(ctx context.Context) (int, error),
	interval time.Duration,
	logger *slog.Logger,
) *ExpirySweeper {
	return &ExpirySweeper{
		sweep:    sweep,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the recurring sweep. It returns immediately; the loop runs
// until Stop is called.
func (s *ExpirySweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

// Stop cancels the loop and waits for the in-flight cycle, if any.
func (s *ExpirySweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *ExpirySweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("discount expiry sweeper started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("discount expiry sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single sweep cycle. Exposed so tests and operators can
// trigger a cycle without waiting out the ticker.
func (s *ExpirySweeper) RunOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("discount sweep panicked", "panic", r)
		}
	}()

	checked, err := s.sweep(ctx)
	if err != nil {
		s.logger.Error("error updating discount statuses", "error", err)
		return
	}
	s.logger.Info("discount sweep completed", "checked", checked)
}
