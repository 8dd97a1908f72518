package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	// MaxRetries = 0 - без ограничения по количеству, только MaxElapsedTime
	MaxRetries uint64

	// nil - ретраятся все ошибки
	ShouldRetry ShouldRetryFunc
	Notify      NotifyFunc
}
