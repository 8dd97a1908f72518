package entities

import "time"

type Package struct {
	ID            int64
	Product       string
	RecipientID   int64
	DeliverymanID *int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusDelivered DeliveryStatus = "delivered"
	StatusCancelled DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// Status вычисляется из дат и в БД не хранится. Отмена важнее доставки
func (p *Package) Status() DeliveryStatus {
	switch {
	case p.CanceledAt != nil:
		return StatusCancelled
	case p.StartDate != nil && p.EndDate != nil:
		return StatusDelivered
	case p.StartDate != nil:
		return StatusPickedUp
	default:
		return StatusPending
	}
}

type PackageModify struct {
	ID            *int64
	Product       *string
	RecipientID   *int64
	DeliverymanID *int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
}

type DeliveriesFilter struct {
	DeliverymanID int64
	Delivered     bool
}
