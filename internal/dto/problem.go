package dto

import (
	"time"

	"fastfeet/internal/entities"
)

type ReportProblemRequest struct {
	Description string `json:"description"`
}

type ProblemResponse struct {
	ID          int64     `json:"id"`
	DeliveryID  int64     `json:"delivery_id"`
	Product     string    `json:"product"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func ProblemFromEntity(p *entities.DeliveryProblem) ProblemResponse {
	return ProblemResponse{
		ID:          p.ID,
		DeliveryID:  p.PackageID,
		Product:     p.Product,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func ProblemsFromEntities(problems []entities.DeliveryProblem) []ProblemResponse {
	res := make([]ProblemResponse, 0, len(problems))
	for i := range problems {
		res = append(res, ProblemFromEntity(&problems[i]))
	}
	return res
}
