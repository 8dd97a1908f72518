//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_problems_get_test
package package_problems_get

import (
	"context"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPackageProblems(ctx context.Context, packageID int64) ([]entities.DeliveryProblem, error)
}
