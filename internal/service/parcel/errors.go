package parcel

import (
	"fmt"

	"fastfeet/internal/entities"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("missing required fields: %w", entities.ErrInvalidArgument)
	ErrInvalidProduct        = fmt.Errorf("invalid product: %w", entities.ErrInvalidArgument)
	ErrInvalidRecipientID    = fmt.Errorf("invalid recipient id: %w", entities.ErrInvalidArgument)
	ErrInvalidDeliverymanID  = fmt.Errorf("invalid deliveryman id: %w", entities.ErrInvalidArgument)
)
