//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_post_test
package deliveries_post

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
	StartDelivery(ctx context.Context, deliverymanID, packageID int64) (*entities.Package, error)
}
