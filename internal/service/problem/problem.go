package problem

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type Service struct {
	problems  ProblemRepository
	packages  PackageRepository
	notifier  Notifier
	txManager TxManager
	clock     Clock
	log       serviceLogger
}

func New(
	log serviceLogger,
	problems ProblemRepository,
	packages PackageRepository,
	notifier Notifier,
	txManager TxManager,
	clock Clock,
) *Service {
	return &Service{
		problems:  problems,
		packages:  packages,
		notifier:  notifier,
		txManager: txManager,
		clock:     clock,
		log:       log.With(logger.NewField("service", "problem")),
	}
}

// ReportProblem принимает проблему в любом статусе доставки, посылку не меняет
func (s *Service) ReportProblem(ctx context.Context, packageID int64, description string) (*entities.DeliveryProblem, error) {
	if !isValidDescription(description) {
		return nil, ErrDescriptionRequired
	}
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}

	if _, err := s.packages.GetByID(ctx, packageID); err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	problem, err := s.problems.Create(ctx, packageID, description)
	if err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}
	return problem, nil
}

func (s *Service) GetProblems(ctx context.Context) ([]entities.DeliveryProblem, error) {
	problems, err := s.problems.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get problems: %w", err)
	}
	return problems, nil
}

func (s *Service) GetPackageProblems(ctx context.Context, packageID int64) ([]entities.DeliveryProblem, error) {
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}

	if _, err := s.packages.GetByID(ctx, packageID); err != nil {
		if errors.Is(err, entities.ErrPackageNotFound) {
			return nil, entities.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("get package: %w", err)
	}

	problems, err := s.problems.GetByPackageID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("get package problems: %w", err)
	}
	return problems, nil
}

// CancelDelivery отменяет посылку и удаляет проблему в одной транзакции.
// Письмо курьеру ставится в очередь уже после коммита, ошибка очереди только логируется
func (s *Service) CancelDelivery(ctx context.Context, problemID int64) (*entities.Package, error) {
	if !isValidID(problemID) {
		return nil, ErrInvalidProblemID
	}

	var (
		cancelled   *entities.Package
		deliveryman *entities.Deliveryman
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		details, err := s.problems.GetDetailsForUpdate(ctx, problemID)
		if err != nil {
			return fmt.Errorf("get problem: %w", err)
		}

		pkg, err := s.packages.GetByIDForUpdate(ctx, details.Package.ID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		if pkg.CanceledAt != nil {
			return ErrAlreadyCancelled
		}

		now := s.clock.Now()
		cancelled, err = s.packages.Update(ctx, entities.PackageModify{
			ID:         &pkg.ID,
			CanceledAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		if err := s.problems.Delete(ctx, problemID); err != nil {
			return fmt.Errorf("delete problem: %w", err)
		}

		deliveryman = details.Deliveryman
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCancellation(ctx, deliveryman, cancelled)
	return cancelled, nil
}

func (s *Service) notifyCancellation(ctx context.Context, deliveryman *entities.Deliveryman, pkg *entities.Package) {
	log := s.log.With(logger.NewField("package", pkg.ID))

	if deliveryman == nil {
		log.Warn("cancellation mail skipped: package has no deliveryman")
		return
	}

	job := entities.NewNotificationJob(entities.CancellationMail, *deliveryman, pkg.Product, s.clock.Now())
	if err := s.notifier.Enqueue(ctx, job); err != nil {
		log.With(
			logger.NewField("job", job.ID.String()),
			logger.NewField("error", err),
		).Warn("cancellation mail enqueue failed")
	}
}
