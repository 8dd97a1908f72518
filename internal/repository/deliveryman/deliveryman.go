package deliveryman

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	query := `SELECT id, name, email, avatar_id, created_at, updated_at
		FROM deliverymen
		WHERE id = $1`

	return r.get(ctx, query, id)
}

// GetByIDForUpdate сериализует старты доставок одного курьера
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	query := `SELECT id, name, email, avatar_id, created_at, updated_at
		FROM deliverymen
		WHERE id = $1
		FOR UPDATE`

	return r.get(ctx, query, id)
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*entities.Deliveryman, error) {
	var d entities.Deliveryman
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&d.ID,
			&d.Name,
			&d.Email,
			&d.AvatarID,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliverymanNotFound
		}
		return nil, fmt.Errorf("unexpected deliveryman repository getbyid error: %w", err)
	}

	return &d, nil
}
