package problem

import "fastfeet/internal/entities"

func ToDomain(p *ProblemDB) *entities.DeliveryProblem {
	if p == nil {
		return nil
	}
	return &entities.DeliveryProblem{
		ID:          p.ID,
		PackageID:   p.DeliveryID,
		Product:     p.Product,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func ToDetailsDomain(d *DetailsDB) *entities.DeliveryProblemDetails {
	if d == nil {
		return nil
	}

	details := &entities.DeliveryProblemDetails{
		Problem: *ToDomain(&d.Problem),
		Package: entities.Package{
			ID:            d.PackageID,
			Product:       d.Problem.Product,
			RecipientID:   d.RecipientID,
			DeliverymanID: d.DeliverymanID,
			SignatureID:   d.SignatureID,
			StartDate:     d.StartDate,
			EndDate:       d.EndDate,
			CanceledAt:    d.CanceledAt,
			CreatedAt:     d.PackageCreatedAt,
			UpdatedAt:     d.PackageUpdatedAt,
		},
	}

	if d.DeliverymanID != nil && d.DeliverymanName != nil {
		details.Deliveryman = &entities.Deliveryman{
			ID:    *d.DeliverymanID,
			Name:  *d.DeliverymanName,
			Email: derefString(d.DeliverymanEmail),
		}
	}

	return details
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
