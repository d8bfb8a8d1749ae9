// Package idle drives passive income accrual on a wall-clock schedule
package idle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/orchestrators/game"
	"github.com/KirkDiggler/doodle-api/internal/pkg/clock"
)

// DefaultInterval is how often the runner wakes up
const DefaultInterval = time.Second

// Config holds the dependencies for the idle runner
type Config struct {
	Game     game.Service
	Clock    clock.Clock
	Interval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Game == nil {
		vb.RequiredField("Game")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Interval < 0 {
		vb.Field("Interval", "must not be negative")
	}

	return vb.Build()
}

// Runner wakes up every interval and credits the income earned since the
// previous wake-up. Elapsed time is measured on the clock so late or missed
// timer fires still pay every whole period.
type Runner struct {
	game     game.Service
	clock    clock.Clock
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewRunner creates a runner. Accrual starts from the time of construction.
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Runner{
		game:     cfg.Game,
		clock:    cfg.Clock,
		interval: interval,
		last:     cfg.Clock.Now(),
	}, nil
}

// Run blocks until ctx is canceled. Accrual errors are logged and the loop
// keeps going.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("Idle runner started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Idle runner stopped")
			return nil
		case <-ticker.C:
			if _, err := r.Step(ctx); err != nil {
				slog.Warn("Idle accrual failed", "error", err)
			}
		}
	}
}

// Step credits the time elapsed since the previous step
func (r *Runner) Step(ctx context.Context) (*game.AdvanceOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	elapsed := now.Sub(r.last)
	if elapsed < 0 {
		// clock went backwards; restart measuring from here
		r.last = now
		return &game.AdvanceOutput{}, nil
	}

	out, err := r.game.Advance(ctx, &game.AdvanceInput{Elapsed: elapsed})
	if err != nil {
		return nil, err
	}
	r.last = now

	return out, nil
}
