package file

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.File, error) {
	query := `SELECT id, name, path, created_at
		FROM files
		WHERE id = $1`

	var f entities.File
	err := r.querier.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Path, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrFileNotFound
		}
		return nil, fmt.Errorf("unexpected file repository getbyid error: %w", err)
	}

	return &f, nil
}
