package parcel

import "time"

type PackageDB struct {
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

type PackageModifyDB struct {
	ID            *int64
	Product       *string
	RecipientID   *int64
	DeliverymanID *int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
}
