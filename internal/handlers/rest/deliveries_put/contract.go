//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_put_test
package deliveries_put

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
	FinishDelivery(ctx context.Context, deliverymanID, packageID, signatureID int64) (*entities.Package, error)
}
