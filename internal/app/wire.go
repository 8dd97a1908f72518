//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"fastfeet/internal/handlers/tasks/package_stats"
	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/kafka"
	"fastfeet/internal/pkg/middlewares/auth"
	deliveryService "fastfeet/internal/service/delivery"
	parcelService "fastfeet/internal/service/parcel"
	problemService "fastfeet/internal/service/problem"
	sessionService "fastfeet/internal/service/session"
	"fastfeet/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		providePackageStatsInterval,
		provideSystemMetricsInterval,

		provideDeliverymanRepository,
		provideFileRepository,
		providePackageRepository,
		provideProblemRepository,
		provideRecipientRepository,
		provideSessionRepository,

		provideNotificationGateway,

		provideServiceDelivery,
		provideServicePackage,
		provideServiceProblem,
		provideServiceSession,

		providePackageStatsTask,
		provideSystemCollectorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServicePackage), new(*parcelService.Service)),
		wire.Bind(new(ServiceProblem), new(*problemService.Service)),
		wire.Bind(new(auth.Authenticator), new(*sessionService.Service)),
		wire.Bind(new(package_stats.Service), new(*parcelService.Service)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorkerApp для воркера уведомлений (cmd/worker-notifications)
func InitializeNotificationWorkerApp(
	log logger.Logger,
	cfg *config.Config,
) (*NotificationWorkerApp, error) {
	wire.Build(
		provideMailer,
		provideMailRetrier,
		provideNotificationService,

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}
