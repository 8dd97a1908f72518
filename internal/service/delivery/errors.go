package delivery

import (
	"fmt"

	"fastfeet/internal/entities"
)

var (
	ErrInvalidDeliverymanID = fmt.Errorf("invalid deliveryman id: %w", entities.ErrInvalidArgument)
	ErrInvalidPackageID     = fmt.Errorf("invalid package id: %w", entities.ErrInvalidArgument)
	ErrInvalidSignatureID   = fmt.Errorf("invalid signature id: %w", entities.ErrInvalidArgument)

	ErrAlreadyStarted  = fmt.Errorf("delivery already started: %w", entities.ErrStateConflict)
	ErrNotStarted      = fmt.Errorf("delivery not started: %w", entities.ErrStateConflict)
	ErrAlreadyFinished = fmt.Errorf("delivery already finalized: %w", entities.ErrStateConflict)

	ErrOutsidePickupWindow = fmt.Errorf("outside pickup window: %w", entities.ErrPolicyViolation)
	ErrDailyQuotaExceeded  = fmt.Errorf("daily delivery quota exceeded: %w", entities.ErrPolicyViolation)
)
