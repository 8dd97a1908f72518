package dto

import (
	"time"

	"github.com/google/uuid"

	"fastfeet/internal/entities"
)

// NotificationMessage - формат задания на письмо в топике уведомлений
type NotificationMessage struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	DeliverymanName  string    `json:"deliveryman_name"`
	DeliverymanEmail string    `json:"deliveryman_email"`
	Product          string    `json:"product"`
	EnqueuedAt       time.Time `json:"enqueued_at"`
}

func NotificationMessageFromEntity(job entities.NotificationJob) NotificationMessage {
	return NotificationMessage{
		ID:               job.ID,
		Name:             job.Name.String(),
		DeliverymanName:  job.DeliverymanName,
		DeliverymanEmail: job.DeliverymanEmail,
		Product:          job.Product,
		EnqueuedAt:       job.EnqueuedAt,
	}
}

func (m NotificationMessage) ToEntity() entities.NotificationJob {
	return entities.NotificationJob{
		ID:               m.ID,
		Name:             entities.NotificationName(m.Name),
		DeliverymanName:  m.DeliverymanName,
		DeliverymanEmail: m.DeliverymanEmail,
		Product:          m.Product,
		EnqueuedAt:       m.EnqueuedAt,
	}
}
