package parcel

import (
	"context"
	"fmt"
	"strings"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type Service struct {
	packages    PackageRepository
	recipients  RecipientRepository
	deliverymen DeliverymanRepository
	notifier    Notifier
	txManager   TxManager
	clock       Clock
	log         serviceLogger
}

func New(
	log serviceLogger,
	packages PackageRepository,
	recipients RecipientRepository,
	deliverymen DeliverymanRepository,
	notifier Notifier,
	txManager TxManager,
	clock Clock,
) *Service {
	return &Service{
		packages:    packages,
		recipients:  recipients,
		deliverymen: deliverymen,
		notifier:    notifier,
		txManager:   txManager,
		clock:       clock,
		log:         log.With(logger.NewField("service", "parcel")),
	}
}

// CreatePackage регистрирует посылку в статусе pending и ставит курьеру письмо
// о новой посылке. Ошибка очереди не отменяет создание
func (s *Service) CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if err := validateCreate(packageModify); err != nil {
		return nil, err
	}

	product := strings.TrimSpace(*packageModify.Product)
	toCreate := entities.PackageModify{
		Product:       &product,
		RecipientID:   packageModify.RecipientID,
		DeliverymanID: packageModify.DeliverymanID,
	}

	var (
		created     *entities.Package
		deliveryman *entities.Deliveryman
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.recipients.GetByID(ctx, *toCreate.RecipientID); err != nil {
			return fmt.Errorf("get recipient: %w", err)
		}

		var err error
		deliveryman, err = s.deliverymen.GetByID(ctx, *toCreate.DeliverymanID)
		if err != nil {
			return fmt.Errorf("get deliveryman: %w", err)
		}

		created, err = s.packages.Create(ctx, toCreate)
		if err != nil {
			return fmt.Errorf("create package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	job := entities.NewNotificationJob(entities.PackageMail, *deliveryman, created.Product, s.clock.Now())
	if err := s.notifier.Enqueue(ctx, job); err != nil {
		s.log.With(
			logger.NewField("package", created.ID),
			logger.NewField("job", job.ID.String()),
			logger.NewField("error", err),
		).Warn("package mail enqueue failed")
	}

	return created, nil
}

// CountByStatus всегда возвращает все четыре статуса, даже с нулем
func (s *Service) CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error) {
	counts, err := s.packages.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count packages by status: %w", err)
	}

	result := map[entities.DeliveryStatus]int64{
		entities.StatusPending:   0,
		entities.StatusPickedUp:  0,
		entities.StatusDelivered: 0,
		entities.StatusCancelled: 0,
	}
	for status, count := range counts {
		result[status] = count
	}
	return result, nil
}
