package notification

import (
	"context"
	"fmt"

	"fastfeet/internal/entities"
)

type Service struct {
	mailer  Mailer
	retrier Retrier
}

func New(mailer Mailer, retrier Retrier) *Service {
	return &Service{
		mailer:  mailer,
		retrier: retrier,
	}
}

// Dispatch рендерит письмо и отправляет его с ретраями.
// Ошибки рендера не ретраятся: сообщение все равно не станет валидным
func (s *Service) Dispatch(ctx context.Context, job entities.NotificationJob) error {
	mail, err := Render(job)
	if err != nil {
		return err
	}

	err = s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.mailer.Send(ctx, mail)
	})
	if err != nil {
		return fmt.Errorf("send %s: %w", job.Name, err)
	}
	return nil
}
