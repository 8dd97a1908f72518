//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type PackageRepository interface {
	Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error)
}

type RecipientRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Recipient, error)
}

type DeliverymanRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error)
}

type Notifier interface {
	Enqueue(ctx context.Context, job entities.NotificationJob) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
