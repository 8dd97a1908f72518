package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByTokenHash(ctx context.Context, tokenHash []byte) (*entities.Principal, error) {
	query := `SELECT s.user_id, u.is_admin, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token_hash = $1`

	var p entities.Principal
	err := r.querier.QueryRow(ctx, query, tokenHash).Scan(&p.UserID, &p.IsAdmin, &p.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository get error: %w", err)
	}

	return &p, nil
}
