package notification

import (
	"fmt"

	"fastfeet/internal/entities"
)

var (
	ErrUnknownJob     = fmt.Errorf("unknown notification job: %w", entities.ErrInvalidArgument)
	ErrMissingAddress = fmt.Errorf("deliveryman email is empty: %w", entities.ErrInvalidArgument)
)
