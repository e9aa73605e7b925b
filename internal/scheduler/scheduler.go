package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one delivery-batch run. The context carries the per-run
// deadline.
type Task func(ctx context.Context) error

// Scheduler fires the delivery batch at a fixed interval. Runs are
// strictly sequential within the loop; overlap with manual triggers is
// resolved by the batch itself.
type Scheduler struct {
	logger   *zap.Logger
	interval time.Duration
	task     Task

	mu      sync.RWMutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewScheduler builds a stopped scheduler around the given task.
func NewScheduler(logger *zap.Logger, interval time.Duration, task Task) *Scheduler {
	return &Scheduler{
		logger:   logger,
		interval: interval,
		task:     task,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop. The first run fires immediately so a
// restart does not wait a full interval for overdue deliveries.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSchedulerAlreadyRunning
	}

	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.loop(ctx)

	s.logger.Info("Delivery scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop signals the loop and waits for an in-progress run to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	close(s.stop)
	<-s.done

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Delivery scheduler stopped")
	return nil
}

// IsRunning reports whether the loop is live.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Delivery scheduler context canceled")
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce executes one batch under a deadline just inside the
// interval, so a stuck run cannot pile onto the next tick.
func (s *Scheduler) runOnce(ctx context.Context) {
	timeout := s.interval - time.Second
	if timeout <= 0 {
		timeout = s.interval
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.task(runCtx); err != nil {
		s.logger.Error("Delivery batch run failed", zap.Error(err))
	}
}
