package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/pkg/querier"
)

const (
	packagesTable  = "packages"
	packageColumns = "id, product, recipient_id, deliveryman_id, signature_id, start_date, end_date, canceled_at, created_at, updated_at"

	recipientFK   = "packages_recipient_id_fkey"
	deliverymanFK = "packages_deliveryman_id_fkey"
	signatureFK   = "packages_signature_id_fkey"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	model := FromDomainModify(&packageModify)

	query := `INSERT INTO packages (product, recipient_id, deliveryman_id)
		VALUES ($1, $2, $3)
		RETURNING ` + packageColumns

	packageModel, err := scanPackage(r.querier.QueryRow(ctx, query, model.Product, model.RecipientID, model.DeliverymanID))
	if err != nil {
		if mapped := mapForeignKey(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Package, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate держит блокировку строки до конца транзакции из ctx
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Package, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Package, error) {
	builder := querier.Builder.
		Select(packageColumns).
		From(packagesTable).
		Where(sq.Eq{"id": id})
	if lock != "" {
		builder = builder.Suffix(lock)
	}

	row, err := r.querier.QueryRowBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	packageModel, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) Update(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	model := FromDomainModify(&packageModify)
	if model.ID == nil {
		return nil, fmt.Errorf("unexpected package repository update error: id is required")
	}

	builder := querier.Builder.
		Update(packagesTable)

	// опционнные поля
	if model.Product != nil {
		builder = builder.Set("product", model.Product)
	}
	if model.RecipientID != nil {
		builder = builder.Set("recipient_id", model.RecipientID)
	}
	if model.DeliverymanID != nil {
		builder = builder.Set("deliveryman_id", model.DeliverymanID)
	}
	if model.SignatureID != nil {
		builder = builder.Set("signature_id", model.SignatureID)
	}
	if model.StartDate != nil {
		builder = builder.Set("start_date", model.StartDate)
	}
	if model.EndDate != nil {
		builder = builder.Set("end_date", model.EndDate)
	}
	if model.CanceledAt != nil {
		builder = builder.Set("canceled_at", model.CanceledAt)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": model.ID}).
		Suffix("RETURNING " + packageColumns)

	row, err := r.querier.QueryRowBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository update error: %w", err)
	}

	packageModel, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPackageNotFound
		}
		if mapped := mapForeignKey(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("unexpected package repository update error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) CountStartedSince(ctx context.Context, deliverymanID int64, since time.Time) (int64, error) {
	query := `SELECT COUNT(*)
		FROM packages
		WHERE deliveryman_id = $1 AND start_date > $2`

	var count int64
	if err := r.querier.QueryRow(ctx, query, deliverymanID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected package repository count started error: %w", err)
	}
	return count, nil
}

func (r *Repository) GetByDeliveryman(ctx context.Context, filter entities.DeliveriesFilter) ([]entities.Package, error) {
	builder := querier.Builder.
		Select(packageColumns).
		From(packagesTable).
		Where(sq.Eq{"deliveryman_id": filter.DeliverymanID}).
		Where(sq.Eq{"canceled_at": nil}).
		OrderBy("id")

	if filter.Delivered {
		builder = builder.Where(sq.NotEq{"end_date": nil})
	} else {
		builder = builder.Where(sq.Eq{"end_date": nil})
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository getbydeliveryman error: %w", err)
	}
	defer rows.Close()

	packages := make([]entities.Package, 0, 8)
	for rows.Next() {
		packageModel, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected package repository scan error: %w", err)
		}
		packages = append(packages, *ToDomain(packageModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected package repository rows error: %w", err)
	}

	return packages, nil
}

// CountByStatus считает статус тем же правилом, что и entities.Package.Status
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error) {
	query := `SELECT
			CASE
				WHEN canceled_at IS NOT NULL THEN 'cancelled'
				WHEN start_date IS NOT NULL AND end_date IS NOT NULL THEN 'delivered'
				WHEN start_date IS NOT NULL THEN 'picked_up'
				ELSE 'pending'
			END AS status,
			COUNT(*)
		FROM packages
		GROUP BY 1`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.DeliveryStatus]int64, 4)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected package repository scan error: %w", err)
		}
		counts[entities.DeliveryStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected package repository rows error: %w", err)
	}

	return counts, nil
}

func scanPackage(row pgx.Row) (*PackageDB, error) {
	var p PackageDB
	err := row.Scan(
		&p.ID,
		&p.Product,
		&p.RecipientID,
		&p.DeliverymanID,
		&p.SignatureID,
		&p.StartDate,
		&p.EndDate,
		&p.CanceledAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func mapForeignKey(err error) error {
	if !repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
		return nil
	}
	switch repository.PgConstraintName(err) {
	case recipientFK:
		return entities.ErrRecipientNotFound
	case deliverymanFK:
		return entities.ErrDeliverymanNotFound
	case signatureFK:
		return entities.ErrSignatureNotFound
	default:
		return nil
	}
}
