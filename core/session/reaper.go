package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/slidecraft/sessionkit/core/logger"
)

// OnReclaim is invoked once for every session the reaper reclaims, giving
// the artifact subsystem a chance to free whatever the payload references.
// Errors are logged and do not abort the sweep of remaining sessions.
type OnReclaim[Data any] func(ctx context.Context, sess Session[Data]) error

// Reaper periodically sweeps the repository for sessions idle past their
// TTL. It is an implementation detail of the lifecycle, not a caller-facing
// contract: the only externally observable effect is that the repository
// eventually stops returning expired sessions.
type Reaper[Data any] struct {
	repo      *Repository[Data]
	onReclaim OnReclaim[Data]

	// Configuration
	ttl             time.Duration
	interval        time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger

	// State management
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	running atomic.Bool
	wg      sync.WaitGroup

	// Observability metrics
	reclaimed atomic.Int64
	sweeps    atomic.Int64
}

// ReaperStats provides observability metrics for monitoring and debugging.
type ReaperStats struct {
	Reclaimed int64 // Total sessions reclaimed
	Sweeps    int64 // Total sweep passes completed
	IsRunning bool  // Whether the background loop is running
}

// ReaperOption configures a Reaper.
type ReaperOption[Data any] func(*Reaper[Data])

// WithReaperConfig takes the idle TTL and sweep interval from a Config.
func WithReaperConfig[Data any](cfg Config) ReaperOption[Data] {
	return func(rp *Reaper[Data]) {
		if cfg.TTL > 0 {
			rp.ttl = cfg.TTL
		}
		if cfg.ReapInterval > 0 {
			rp.interval = cfg.ReapInterval
		}
	}
}

// WithOnReclaim sets the release hook invoked for each reclaimed session.
func WithOnReclaim[Data any](hook OnReclaim[Data]) ReaperOption[Data] {
	return func(rp *Reaper[Data]) {
		rp.onReclaim = hook
	}
}

// WithReaperLogger sets the logger for sweep activity and hook failures.
func WithReaperLogger[Data any](log *slog.Logger) ReaperOption[Data] {
	return func(rp *Reaper[Data]) {
		if log != nil {
			rp.logger = log
		}
	}
}

// WithReaperShutdownTimeout sets the graceful shutdown timeout.
func WithReaperShutdownTimeout[Data any](timeout time.Duration) ReaperOption[Data] {
	return func(rp *Reaper[Data]) {
		if timeout > 0 {
			rp.shutdownTimeout = timeout
		}
	}
}

// NewReaper creates a reaper over the repository with the default lifecycle
// configuration. Call Start (or Run, for errgroup use) to begin sweeping;
// Sweep performs a single deterministic pass for tests and manual triggers.
func NewReaper[Data any](repo *Repository[Data], opts ...ReaperOption[Data]) *Reaper[Data] {
	cfg := DefaultConfig()
	rp := &Reaper[Data]{
		repo:            repo,
		ttl:             cfg.TTL,
		interval:        cfg.ReapInterval,
		shutdownTimeout: 30 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(rp)
	}

	return rp
}

// Sweep performs one expiry pass: every session idle past the TTL is removed
// from the repository and handed to the release hook exactly once. Returns
// the number of sessions reclaimed.
//
// A hook error is logged and does not stop the remaining reclaims. A hook
// panic propagates: it signals a broken invariant in the artifact subsystem
// and should crash loudly rather than be swallowed.
func (rp *Reaper[Data]) Sweep(ctx context.Context) int {
	expired := rp.repo.SweepExpired(rp.ttl)
	for _, sess := range expired {
		if rp.onReclaim == nil {
			continue
		}
		if err := rp.onReclaim(ctx, sess); err != nil {
			rp.logger.ErrorContext(ctx, "session reclaim hook failed",
				logger.Component("session.reaper"),
				logger.SessionID(sess.ID),
				logger.OwnerID(sess.OwnerID),
				logger.Error(err))
		}
	}

	rp.sweeps.Add(1)
	if n := len(expired); n > 0 {
		rp.reclaimed.Add(int64(n))
		rp.logger.InfoContext(ctx, "reclaimed expired sessions",
			logger.Component("session.reaper"),
			logger.Count("reclaimed", n),
			logger.Count("remaining", rp.repo.Len()))
	}
	return len(expired)
}

// Start begins the background sweep loop. This is a blocking operation that
// runs until the context is cancelled; use Run for the errgroup pattern or
// call this in a goroutine.
func (rp *Reaper[Data]) Start(ctx context.Context) error {
	rp.mu.Lock()
	if rp.cancel != nil {
		rp.mu.Unlock()
		return fmt.Errorf("reaper already started")
	}
	if rp.interval <= 0 {
		rp.mu.Unlock()
		return fmt.Errorf("reap interval must be > 0, got %v (use WithReaperConfig to configure)", rp.interval)
	}

	rp.ctx, rp.cancel = context.WithCancel(ctx)
	rp.mu.Unlock()

	rp.running.Store(true)
	defer rp.running.Store(false)

	rp.logger.InfoContext(rp.ctx, "session reaper started",
		logger.Component("session.reaper"),
		slog.Duration("interval", rp.interval),
		slog.Duration("ttl", rp.ttl))

	ticker := time.NewTicker(rp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-rp.ctx.Done():
			rp.logger.InfoContext(context.Background(), "session reaper stopping",
				logger.Component("session.reaper"))
			return rp.ctx.Err()
		case <-ticker.C:
			rp.sweepWithWait()
		}
	}
}

// Stop gracefully shuts down the background loop, waiting up to the
// shutdown timeout for an in-progress sweep to finish.
func (rp *Reaper[Data]) Stop() error {
	rp.mu.Lock()
	if rp.cancel == nil {
		rp.mu.Unlock()
		return fmt.Errorf("reaper not started")
	}

	cancel := rp.cancel
	rp.cancel = nil
	rp.mu.Unlock()

	cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), rp.shutdownTimeout)
	defer ctxCancel()

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout exceeded after %s", rp.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// The returned function starts the loop, watches for context cancellation,
// and shuts down gracefully when it fires.
func (rp *Reaper[Data]) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- rp.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = rp.Stop()
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Stats returns current reaper statistics. Thread-safe.
func (rp *Reaper[Data]) Stats() ReaperStats {
	return ReaperStats{
		Reclaimed: rp.reclaimed.Load(),
		Sweeps:    rp.sweeps.Load(),
		IsRunning: rp.running.Load(),
	}
}

// sweepWithWait tracks the sweep with the WaitGroup so Stop can wait for an
// in-progress pass.
func (rp *Reaper[Data]) sweepWithWait() {
	rp.mu.Lock()
	if rp.cancel == nil {
		rp.mu.Unlock()
		return
	}
	rp.wg.Add(1)
	ctx := rp.ctx
	rp.mu.Unlock()

	defer rp.wg.Done()
	rp.Sweep(ctx)
}
