//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"fastfeet/internal/entities"
)

type Mailer interface {
	Send(ctx context.Context, mail entities.Mail) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
