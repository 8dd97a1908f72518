//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_stats_test
package package_stats

import (
	"context"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error)
}

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
