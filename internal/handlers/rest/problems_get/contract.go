//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problems_get_test
package problems_get

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
	GetProblems(ctx context.Context) ([]entities.DeliveryProblem, error)
}
