package parcel

import (
	"strings"

	"fastfeet/internal/entities"
)

const maxProductLength = 255

func validateCreate(packageModify entities.PackageModify) error {
	if packageModify.Product == nil || packageModify.RecipientID == nil || packageModify.DeliverymanID == nil {
		return ErrMissingRequiredFields
	}

	product := strings.TrimSpace(*packageModify.Product)
	if product == "" || len(product) > maxProductLength {
		return ErrInvalidProduct
	}
	if *packageModify.RecipientID <= 0 {
		return ErrInvalidRecipientID
	}
	if *packageModify.DeliverymanID <= 0 {
		return ErrInvalidDeliverymanID
	}
	return nil
}
