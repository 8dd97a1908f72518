package dto

import (
	"time"

	"fastfeet/internal/entities"
)

type StartDeliveryRequest struct {
	PackageID int64 `json:"package_id"`
}

type FinishDeliveryRequest struct {
	PackageID   int64 `json:"package_id"`
	SignatureID int64 `json:"signature_id"`
}

type CreatePackageRequest struct {
	Product       string `json:"product"`
	RecipientID   int64  `json:"recipient_id"`
	DeliverymanID int64  `json:"deliveryman_id"`
}

type PackageResponse struct {
	ID            int64      `json:"id"`
	Product       string     `json:"product"`
	Status        string     `json:"status"`
	RecipientID   int64      `json:"recipient_id"`
	DeliverymanID *int64     `json:"deliveryman_id"`
	SignatureID   *int64     `json:"signature_id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CanceledAt    *time.Time `json:"canceled_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func PackageFromEntity(p *entities.Package) PackageResponse {
	return PackageResponse{
		ID:            p.ID,
		Product:       p.Product,
		Status:        p.Status().String(),
		RecipientID:   p.RecipientID,
		DeliverymanID: p.DeliverymanID,
		SignatureID:   p.SignatureID,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CanceledAt:    p.CanceledAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func PackagesFromEntities(packages []entities.Package) []PackageResponse {
	res := make([]PackageResponse, 0, len(packages))
	for i := range packages {
		res = append(res, PackageFromEntity(&packages[i]))
	}
	return res
}

type CancelDeliveryResponse struct {
	OK      string          `json:"ok"`
	Package PackageResponse `json:"package"`
}
