package recipient

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Recipient, error) {
	query := `SELECT id, name, street, number, complement, state, city, zip_code, created_at, updated_at
		FROM recipients
		WHERE id = $1`

	var rc entities.Recipient
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&rc.ID,
			&rc.Name,
			&rc.Street,
			&rc.Number,
			&rc.Complement,
			&rc.State,
			&rc.City,
			&rc.ZipCode,
			&rc.CreatedAt,
			&rc.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository getbyid error: %w", err)
	}

	return &rc, nil
}
