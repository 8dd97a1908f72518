package auth

import (
	"context"

	"fastfeet/internal/entities"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, principal *entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext - nil для анонимного запроса
func PrincipalFromContext(ctx context.Context) *entities.Principal {
	principal, _ := ctx.Value(principalKey{}).(*entities.Principal)
	return principal
}

func IsAdmin(ctx context.Context) bool {
	principal := PrincipalFromContext(ctx)
	return principal != nil && principal.IsAdmin
}
