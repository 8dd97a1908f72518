package notification

import (
	"bytes"
	"fmt"
	"text/template"

	"fastfeet/internal/entities"
)

type mailTemplate struct {
	subject string
	body    *template.Template
}

var templates = map[entities.NotificationName]mailTemplate{
	entities.CancellationMail: {
		subject: "Entrega cancelada",
		body: template.Must(template.New("cancellation").Parse(
			`Olá, {{.DeliverymanName}}.

A entrega do produto "{{.Product}}" foi cancelada e não precisa mais ser realizada.
`)),
	},
	entities.PackageMail: {
		subject: "Encomenda cadastrada - Pronto para retirada",
		body: template.Must(template.New("package").Parse(
			`Olá, {{.DeliverymanName}}.

O produto "{{.Product}}" foi cadastrado e está pronto para retirada entre 08:00 e 18:00.
`)),
	},
}

func Render(job entities.NotificationJob) (entities.Mail, error) {
	tmpl, ok := templates[job.Name]
	if !ok {
		return entities.Mail{}, fmt.Errorf("%w: %q", ErrUnknownJob, job.Name)
	}
	if job.DeliverymanEmail == "" {
		return entities.Mail{}, ErrMissingAddress
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, job); err != nil {
		return entities.Mail{}, fmt.Errorf("render %s: %w", job.Name, err)
	}

	return entities.Mail{
		To:      fmt.Sprintf("%s <%s>", job.DeliverymanName, job.DeliverymanEmail),
		Subject: tmpl.subject,
		Body:    body.String(),
	}, nil
}
