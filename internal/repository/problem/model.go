package problem

import "time"

type ProblemDB struct {
	ID          int64
	DeliveryID  int64
	Product     string
	Description string
	CreatedAt   time.Time
}

// DetailsDB - строка problem + package + deliveryman (LEFT JOIN, поля курьера nullable)
type DetailsDB struct {
	Problem          ProblemDB
	PackageID        int64
	RecipientID      int64
	DeliverymanID    *int64
	SignatureID      *int64
	StartDate        *time.Time
	EndDate          *time.Time
	CanceledAt       *time.Time
	PackageCreatedAt time.Time
	PackageUpdatedAt time.Time
	DeliverymanName  *string
	DeliverymanEmail *string
}
