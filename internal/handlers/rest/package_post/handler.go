package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/pkg/middlewares/auth"
)

// Handler - регистрация посылки администратором
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdmin(r.Context()) {
		response.Error(w, h.log, http.StatusUnauthorized, dto.MsgAccessDenied)
		return
	}

	var req dto.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), entities.PackageModify{
		Product:       &req.Product,
		RecipientID:   &req.RecipientID,
		DeliverymanID: &req.DeliverymanID,
	})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrRecipientNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgRecipientNotFound)
		case errors.Is(err, entities.ErrDeliverymanNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgDeliverymanNotFound)
		case errors.Is(err, entities.ErrInvalidArgument):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PackageFromEntity(pkg))
}
