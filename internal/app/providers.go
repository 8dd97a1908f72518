package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	notificationGateway "fastfeet/internal/gateway/kafka/notification"
	smtpGateway "fastfeet/internal/gateway/smtp"
	"fastfeet/internal/handlers/tasks/package_stats"
	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/kafka"
	"fastfeet/internal/pkg/metrics"
	deliverymanRepo "fastfeet/internal/repository/deliveryman"
	fileRepo "fastfeet/internal/repository/file"
	parcelRepo "fastfeet/internal/repository/parcel"
	problemRepo "fastfeet/internal/repository/problem"
	recipientRepo "fastfeet/internal/repository/recipient"
	sessionRepo "fastfeet/internal/repository/session"
	deliveryService "fastfeet/internal/service/delivery"
	notificationService "fastfeet/internal/service/notification"
	parcelService "fastfeet/internal/service/parcel"
	problemService "fastfeet/internal/service/problem"
	sessionService "fastfeet/internal/service/session"
	"fastfeet/pkg/background"
	"fastfeet/pkg/clock"
	"fastfeet/pkg/logger"
	"fastfeet/pkg/querier"
	"fastfeet/pkg/retrier"
	"fastfeet/pkg/retrier/backoff_adapter"
	"fastfeet/pkg/tx"
)

const defaultSystemMetricsInterval = 15 * time.Second

// mailRetry: письмо уходит не позже чем через пару минут или не уходит совсем
var mailRetry = retrier.Config{
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     10 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
	MaxRetries:      5,
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock(cfg *config.Config) clock.Clock {
	return clock.Real(cfg.Delivery.Location)
}

func providePackageStatsInterval(cfg *config.Config) PackageStatsInterval {
	return PackageStatsInterval(cfg.Tasks.PackageStatsInterval)
}

func provideSystemMetricsInterval() SystemMetricsInterval {
	return SystemMetricsInterval(defaultSystemMetricsInterval)
}

func provideDeliverymanRepository(querier *querier.Querier) *deliverymanRepo.Repository {
	return deliverymanRepo.New(querier)
}

func provideFileRepository(querier *querier.Querier) *fileRepo.Repository {
	return fileRepo.New(querier)
}

func providePackageRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideProblemRepository(querier *querier.Querier) *problemRepo.Repository {
	return problemRepo.New(querier)
}

func provideRecipientRepository(querier *querier.Querier) *recipientRepo.Repository {
	return recipientRepo.New(querier)
}

func provideSessionRepository(querier *querier.Querier) *sessionRepo.Repository {
	return sessionRepo.New(querier)
}

func provideNotificationGateway(producer *kafka.Producer, cfg *config.Config) *notificationGateway.Gateway {
	return notificationGateway.New(producer, cfg.Kafka.NotificationsTopic, cfg.Kafka.EnqueueTimeout)
}

func provideServiceDelivery(
	packages *parcelRepo.Repository,
	deliverymen *deliverymanRepo.Repository,
	files *fileRepo.Repository,
	txManager *tx.Manager,
	clk clock.Clock,
) *deliveryService.Delivery {
	return deliveryService.New(packages, deliverymen, files, txManager, clk)
}

func provideServicePackage(
	log logger.Logger,
	packages *parcelRepo.Repository,
	recipients *recipientRepo.Repository,
	deliverymen *deliverymanRepo.Repository,
	notifier *notificationGateway.Gateway,
	txManager *tx.Manager,
	clk clock.Clock,
) *parcelService.Service {
	return parcelService.New(log, packages, recipients, deliverymen, notifier, txManager, clk)
}

func provideServiceProblem(
	log logger.Logger,
	problems *problemRepo.Repository,
	packages *parcelRepo.Repository,
	notifier *notificationGateway.Gateway,
	txManager *tx.Manager,
	clk clock.Clock,
) *problemService.Service {
	return problemService.New(log, problems, packages, notifier, txManager, clk)
}

func provideServiceSession(sessions *sessionRepo.Repository, clk clock.Clock) *sessionService.Service {
	return sessionService.New(sessions, clk)
}

func providePackageStatsTask(
	log logger.Logger,
	service package_stats.Service,
	interval PackageStatsInterval,
) *package_stats.PackageStats {
	return package_stats.NewPackageStats(log, service, time.Duration(interval))
}

func provideSystemCollectorTask(interval SystemMetricsInterval) *metrics.SystemCollector {
	return metrics.NewSystemCollector(time.Duration(interval))
}

func provideTaskList(
	packageStatsTask *package_stats.PackageStats,
	systemCollectorTask *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		packageStatsTask,
		systemCollectorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideMailer(cfg *config.Config) (*smtpGateway.Mailer, error) {
	return smtpGateway.New(&cfg.Mail)
}

func provideMailRetrier(log logger.Logger) *backoff_adapter.Retrier {
	retryConfig := mailRetry
	retryConfig.Notify = func(err error, wait time.Duration) {
		log.Warn("mail delivery failed, retrying",
			logger.NewField("error", err),
			logger.NewField("wait", wait),
		)
	}
	return backoff_adapter.New(retryConfig)
}

func provideNotificationService(mailer *smtpGateway.Mailer, mailRetrier *backoff_adapter.Retrier) *notificationService.Service {
	return notificationService.New(mailer, mailRetrier)
}
