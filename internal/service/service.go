package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/config"
	"github.com/zapagenda/zap-confirm/internal/repository"
)

type Service struct {
	Session      SessionService
	Confirmation ConfirmationService
	Queue        QueueService
	Message      MessageService
	Scheduler    SchedulerService
	Health       HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	brokerClient broker.Client,
	breaker BreakerReporter,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	sessionService := NewSessionService(cfg, repo, brokerClient, redisClient, logger)
	queueService := NewQueueService(cfg, repo, brokerClient, logger)
	confirmationService := NewConfirmationService(repo, brokerClient, queueService, redisClient, logger)
	messageService := NewMessageService(repo, brokerClient, logger)
	schedulerService := NewSchedulerService(cfg, queueService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, breaker, logger)

	return &Service{
		Session:      sessionService,
		Confirmation: confirmationService,
		Queue:        queueService,
		Message:      messageService,
		Scheduler:    schedulerService,
		Health:       healthService,
	}
}
