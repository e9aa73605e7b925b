package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/config"
	"github.com/zapagenda/zap-confirm/internal/scheduler"
)

type schedulerService struct {
	scheduler *scheduler.Scheduler
	logger    *zap.Logger
}

// NewSchedulerService wires the periodic delivery batch. A tick that
// overlaps a still-running batch is skipped, not queued.
func NewSchedulerService(
	cfg *config.Config,
	queue QueueService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute
	batchSize := cfg.Scheduler.BatchSize

	task := func(ctx context.Context) error {
		_, err := queue.ProcessBatch(ctx, batchSize)
		if errors.Is(err, ErrBatchInFlight) {
			logger.Info("Previous batch still running, tick skipped")
			return nil
		}
		return err
	}

	return &schedulerService{
		scheduler: scheduler.NewScheduler(logger, interval, task),
		logger:    logger,
	}
}

func (s *schedulerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}
