package parcel

import "fastfeet/internal/entities"

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}
	return &entities.Package{
		ID:            p.ID,
		Product:       p.Product,
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

func FromDomainModify(p *entities.PackageModify) *PackageModifyDB {
	if p == nil {
		return nil
	}
	return &PackageModifyDB{
		ID:            p.ID,
		Product:       p.Product,
		RecipientID:   p.RecipientID,
		DeliverymanID: p.DeliverymanID,
		SignatureID:   p.SignatureID,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CanceledAt:    p.CanceledAt,
	}
}
