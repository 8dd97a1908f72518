package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageID int64, description string) (*entities.DeliveryProblem, error) {
	query := `WITH inserted AS (
			INSERT INTO delivery_problems (delivery_id, description)
			VALUES ($1, $2)
			RETURNING id, delivery_id, description, created_at
		)
		SELECT i.id, i.delivery_id, p.product, i.description, i.created_at
		FROM inserted i
		JOIN packages p ON p.id = i.delivery_id`

	problemModel, err := scanProblem(r.querier.QueryRow(ctx, query, packageID, description))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository create error: %w", err)
	}

	return ToDomain(problemModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryProblem, error) {
	query := `SELECT dp.id, dp.delivery_id, p.product, dp.description, dp.created_at
		FROM delivery_problems dp
		JOIN packages p ON p.id = dp.delivery_id
		ORDER BY dp.id`

	return r.list(ctx, query)
}

func (r *Repository) GetByPackageID(ctx context.Context, packageID int64) ([]entities.DeliveryProblem, error) {
	query := `SELECT dp.id, dp.delivery_id, p.product, dp.description, dp.created_at
		FROM delivery_problems dp
		JOIN packages p ON p.id = dp.delivery_id
		WHERE dp.delivery_id = $1
		ORDER BY dp.id`

	return r.list(ctx, query, packageID)
}

// GetDetailsForUpdate лочит только строку проблемы: FOR UPDATE нельзя
// навесить на nullable сторону LEFT JOIN. Посылку сервис лочит отдельно
func (r *Repository) GetDetailsForUpdate(ctx context.Context, id int64) (*entities.DeliveryProblemDetails, error) {
	query := `SELECT
			dp.id, dp.delivery_id, p.product, dp.description, dp.created_at,
			p.id, p.recipient_id, p.deliveryman_id, p.signature_id,
			p.start_date, p.end_date, p.canceled_at, p.created_at, p.updated_at,
			d.name, d.email
		FROM delivery_problems dp
		JOIN packages p ON p.id = dp.delivery_id
		LEFT JOIN deliverymen d ON d.id = p.deliveryman_id
		WHERE dp.id = $1
		FOR UPDATE OF dp`

	var d DetailsDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&d.Problem.ID,
			&d.Problem.DeliveryID,
			&d.Problem.Product,
			&d.Problem.Description,
			&d.Problem.CreatedAt,
			&d.PackageID,
			&d.RecipientID,
			&d.DeliverymanID,
			&d.SignatureID,
			&d.StartDate,
			&d.EndDate,
			&d.CanceledAt,
			&d.PackageCreatedAt,
			&d.PackageUpdatedAt,
			&d.DeliverymanName,
			&d.DeliverymanEmail,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProblemNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository getdetails error: %w", err)
	}

	return ToDetailsDomain(&d), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM delivery_problems WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected problem repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrProblemNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]entities.DeliveryProblem, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
	}
	defer rows.Close()

	problems := make([]entities.DeliveryProblem, 0, 8)
	for rows.Next() {
		problemModel, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected problem repository scan error: %w", err)
		}
		problems = append(problems, *ToDomain(problemModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected problem repository rows error: %w", err)
	}

	return problems, nil
}

func scanProblem(row pgx.Row) (*ProblemDB, error) {
	var p ProblemDB
	if err := row.Scan(&p.ID, &p.DeliveryID, &p.Product, &p.Description, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
