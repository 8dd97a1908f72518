package entities

import (
	"time"

	"github.com/google/uuid"
)

type NotificationName string

const (
	CancellationMail NotificationName = "CancellationMail"
	PackageMail      NotificationName = "PackageMail"
)

func (n NotificationName) String() string {
	return string(n)
}

type NotificationJob struct {
	ID               uuid.UUID
	Name             NotificationName
	DeliverymanName  string
	DeliverymanEmail string
	Product          string
	EnqueuedAt       time.Time
}

func NewNotificationJob(name NotificationName, deliveryman Deliveryman, product string, now time.Time) NotificationJob {
	return NotificationJob{
		ID:               uuid.New(),
		Name:             name,
		DeliverymanName:  deliveryman.Name,
		DeliverymanEmail: deliveryman.Email,
		Product:          product,
		EnqueuedAt:       now,
	}
}

type Mail struct {
	To      string
	Subject string
	Body    string
}
