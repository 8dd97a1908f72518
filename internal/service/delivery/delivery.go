package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/entities"
)

type Delivery struct {
	packages    PackageRepository
	deliverymen DeliverymanRepository
	files       FileRepository
	txManager   TxManager
	clock       Clock
}

func New(
	packages PackageRepository,
	deliverymen DeliverymanRepository,
	files FileRepository,
	txManager TxManager,
	clock Clock,
) *Delivery {
	return &Delivery{
		packages:    packages,
		deliverymen: deliverymen,
		files:       files,
		txManager:   txManager,
		clock:       clock,
	}
}

// StartDelivery: сначала лочим курьера (подсчет квоты по одному курьеру идет
// последовательно), потом посылку (два старта одной посылки не пройдут оба)
func (d *Delivery) StartDelivery(ctx context.Context, deliverymanID, packageID int64) (*entities.Package, error) {
	if !isValidID(deliverymanID) {
		return nil, ErrInvalidDeliverymanID
	}
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}

	var started *entities.Package
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.deliverymen.GetByIDForUpdate(ctx, deliverymanID); err != nil {
			return fmt.Errorf("get deliveryman: %w", err)
		}

		pkg, err := d.packages.GetByIDForUpdate(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		if pkg.StartDate != nil {
			return ErrAlreadyStarted
		}

		now := d.clock.Now()
		if !IsWithinPickupWindow(now) {
			return ErrOutsidePickupWindow
		}

		startedToday, err := d.countStartedToday(ctx, deliverymanID, now)
		if err != nil {
			return err
		}
		if IsQuotaExhausted(startedToday) {
			return ErrDailyQuotaExceeded
		}

		started, err = d.packages.Update(ctx, entities.PackageModify{
			ID:        &pkg.ID,
			StartDate: &now,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

// FinishDelivery не сверяет курьера с владельцем посылки
func (d *Delivery) FinishDelivery(ctx context.Context, deliverymanID, packageID, signatureID int64) (*entities.Package, error) {
	if !isValidID(deliverymanID) {
		return nil, ErrInvalidDeliverymanID
	}
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}
	if !isValidID(signatureID) {
		return nil, ErrInvalidSignatureID
	}

	var finished *entities.Package
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.deliverymen.GetByID(ctx, deliverymanID); err != nil {
			return fmt.Errorf("get deliveryman: %w", err)
		}

		if _, err := d.files.GetByID(ctx, signatureID); err != nil {
			if errors.Is(err, entities.ErrFileNotFound) {
				return entities.ErrSignatureNotFound
			}
			return fmt.Errorf("get signature: %w", err)
		}

		pkg, err := d.packages.GetByIDForUpdate(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		if pkg.StartDate == nil {
			return ErrNotStarted
		}
		if pkg.EndDate != nil {
			return ErrAlreadyFinished
		}

		now := d.clock.Now()
		finished, err = d.packages.Update(ctx, entities.PackageModify{
			ID:          &pkg.ID,
			EndDate:     &now,
			SignatureID: &signatureID,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return finished, nil
}

// отмененные посылки не попадают ни в один из списков
func (d *Delivery) GetDeliveries(ctx context.Context, filter entities.DeliveriesFilter) ([]entities.Package, error) {
	if !isValidID(filter.DeliverymanID) {
		return nil, ErrInvalidDeliverymanID
	}

	if _, err := d.deliverymen.GetByID(ctx, filter.DeliverymanID); err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	packages, err := d.packages.GetByDeliveryman(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}
	return packages, nil
}

// start_date строго больше полуночи дня now
func (d *Delivery) countStartedToday(ctx context.Context, deliverymanID int64, now time.Time) (int64, error) {
	count, err := d.packages.CountStartedSince(ctx, deliverymanID, startOfDay(now))
	if err != nil {
		return 0, fmt.Errorf("count started deliveries: %w", err)
	}
	return count, nil
}
