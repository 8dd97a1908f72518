//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"fastfeet/internal/entities"
)

type Repository interface {
	GetByTokenHash(ctx context.Context, tokenHash []byte) (*entities.Principal, error)
}

type Clock interface {
	Now() time.Time
}
