//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_test
package problem

import (
	"context"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type ProblemRepository interface {
	Create(ctx context.Context, packageID int64, description string) (*entities.DeliveryProblem, error)
	GetAll(ctx context.Context) ([]entities.DeliveryProblem, error)
	GetByPackageID(ctx context.Context, packageID int64) ([]entities.DeliveryProblem, error)
	GetDetailsForUpdate(ctx context.Context, id int64) (*entities.DeliveryProblemDetails, error)
	Delete(ctx context.Context, id int64) error
}

type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Package, error)
	Update(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
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
