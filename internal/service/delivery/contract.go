//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"fastfeet/internal/entities"
)

type PackageRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Package, error)
	Update(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	CountStartedSince(ctx context.Context, deliverymanID int64, since time.Time) (int64, error)
	GetByDeliveryman(ctx context.Context, filter entities.DeliveriesFilter) ([]entities.Package, error)
}

type DeliverymanRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Deliveryman, error)
}

type FileRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.File, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
