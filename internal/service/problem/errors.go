package problem

import (
	"fmt"

	"fastfeet/internal/entities"
)

var (
	ErrInvalidPackageID    = fmt.Errorf("invalid package id: %w", entities.ErrInvalidArgument)
	ErrInvalidProblemID    = fmt.Errorf("invalid problem id: %w", entities.ErrInvalidArgument)
	ErrDescriptionRequired = fmt.Errorf("description not provided: %w", entities.ErrInvalidArgument)

	ErrAlreadyCancelled = fmt.Errorf("delivery already cancelled: %w", entities.ErrStateConflict)
)
