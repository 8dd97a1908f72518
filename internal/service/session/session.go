package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"fastfeet/internal/entities"
)

type Service struct {
	repository Repository
	clock      Clock
}

func New(repository Repository, clock Clock) *Service {
	return &Service{
		repository: repository,
		clock:      clock,
	}
}

// HashToken - в БД лежит только blake3 от токена
func HashToken(token string) []byte {
	sum := blake3.Sum256([]byte(token))
	return sum[:]
}

func (s *Service) Authenticate(ctx context.Context, token string) (*entities.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenInvalid
	}

	principal, err := s.repository.GetByTokenHash(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !principal.ExpiresAt.After(s.clock.Now()) {
		return nil, ErrTokenInvalid
	}

	return principal, nil
}
