package entities

import (
	"errors"
	"fmt"
)

// Категории. Каждая конкретная ошибка ниже оборачивает ровно одну из них
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStateConflict   = errors.New("state conflict")
	ErrPolicyViolation = errors.New("policy violation")
	ErrAccessDenied    = errors.New("access denied")
)

var (
	ErrPackageNotFound     = fmt.Errorf("package %w", ErrNotFound)
	ErrDeliverymanNotFound = fmt.Errorf("deliveryman %w", ErrNotFound)
	ErrRecipientNotFound   = fmt.Errorf("recipient %w", ErrNotFound)
	ErrSignatureNotFound   = fmt.Errorf("signature picture %w", ErrNotFound)
	ErrFileNotFound        = fmt.Errorf("file %w", ErrNotFound)
	ErrProblemNotFound     = fmt.Errorf("delivery problem %w", ErrNotFound)
	ErrDeliveryNotFound    = fmt.Errorf("delivery %w", ErrNotFound)
	ErrSessionNotFound     = fmt.Errorf("session %w", ErrNotFound)
)
