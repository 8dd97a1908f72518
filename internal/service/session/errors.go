package session

import (
	"fmt"

	"fastfeet/internal/entities"
)

var ErrTokenInvalid = fmt.Errorf("token invalid: %w", entities.ErrAccessDenied)
