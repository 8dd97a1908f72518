package smtp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gomail "github.com/wneessen/go-mail"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/config"
)

type Mailer struct {
	host string
	from string
	opts []gomail.Option
	now  func() time.Time
}

const sendTimeout = 30 * time.Second

func New(cfg *config.Mail) (*Mailer, error) {
	if err := gomail.NewMsg().From(cfg.From); err != nil {
		return nil, fmt.Errorf("parse MAIL_FROM %q: %w", cfg.From, err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("parse SMTP_PORT %q: %w", cfg.Port, err)
	}

	// STARTTLS если сервер его предлагает
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	return &Mailer{
		host: cfg.Host,
		from: cfg.From,
		opts: opts,
		now:  time.Now,
	}, nil
}

// Send - одна SMTP сессия на письмо
func (m *Mailer) Send(ctx context.Context, msg entities.Mail) error {
	message, err := m.compose(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.host, m.opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send mail via %s: %w", m.host, err)
	}

	return nil
}

func (m *Mailer) compose(msg entities.Mail) (*gomail.Msg, error) {
	message := gomail.NewMsg()

	if err := message.From(m.from); err != nil {
		return nil, fmt.Errorf("parse MAIL_FROM %q: %w", m.from, err)
	}
	if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("parse recipient %q: %w", msg.To, err)
	}

	message.Subject(msg.Subject)
	message.SetDateWithValue(m.now())
	message.SetMessageID()
	message.SetBodyString(gomail.TypeTextPlain, msg.Body)

	return message, nil
}
