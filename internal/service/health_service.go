package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/api"
	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/repository"
)

// BreakerReporter exposes the broker client's circuit breaker state for
// the health surface.
type BreakerReporter interface {
	BreakerStatus() (state broker.BreakerState, requests, failures uint32)
}

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	scheduler   SchedulerService
	breaker     BreakerReporter
	logger      *zap.Logger
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	breaker BreakerReporter,
	logger *zap.Logger,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		scheduler:   schedulerService,
		breaker:     breaker,
		logger:      logger,
	}
}

// GetHealth checks every component. Database down means unhealthy;
// anything else degraded at worst.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:          api.Healthy,
		SchedulerStatus: api.HealthResponseSchedulerStatusStopped,
		DatabaseStatus:  api.HealthResponseDatabaseStatusConnected,
		RedisStatus:     api.HealthResponseRedisStatusConnected,
	}

	if s.scheduler != nil && s.scheduler.IsRunning() {
		status.SchedulerStatus = api.HealthResponseSchedulerStatusRunning
	}

	if err := s.repo.Ping(); err != nil {
		s.logger.Error("Database health check failed", zap.Error(err))
		status.DatabaseStatus = api.HealthResponseDatabaseStatusDisconnected
		status.Status = api.Unhealthy
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.logger.Error("Redis health check failed", zap.Error(err))
		status.RedisStatus = api.HealthResponseRedisStatusDisconnected
		if status.Status == api.Healthy {
			status.Status = api.Degraded
		}
	}

	if s.breaker != nil {
		state, requests, failures := s.breaker.BreakerStatus()
		status.CircuitBreakerState = breakerStateToAPI(state)
		status.CircuitBreakerStatus = fmt.Sprintf("requests=%d failures=%d", requests, failures)
		if state == broker.BreakerOpen && status.Status == api.Healthy {
			status.Status = api.Degraded
		}
	}

	return status
}

func breakerStateToAPI(state broker.BreakerState) api.HealthResponseCircuitBreakerState {
	switch state {
	case broker.BreakerHalfOpen:
		return api.HalfOpen
	case broker.BreakerOpen:
		return api.Open
	default:
		return api.Closed
	}
}
