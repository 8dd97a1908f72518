package entities

import "time"

type DeliveryProblem struct {
	ID          int64
	PackageID   int64
	Product     string
	Description string
	CreatedAt   time.Time
}

// Deliveryman == nil, если у посылки нет курьера
type DeliveryProblemDetails struct {
	Problem     DeliveryProblem
	Package     Package
	Deliveryman *Deliveryman
}
