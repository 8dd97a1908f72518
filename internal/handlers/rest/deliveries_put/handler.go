package deliveries_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/service/delivery"
)

// Handler - завершение доставки с подписью получателя
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
	deliverymanID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	var req dto.FinishDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	pkg, err := h.service.FinishDelivery(r.Context(), deliverymanID, req.PackageID, req.SignatureID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrDeliverymanNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgDeliverymanNotFound)
		case errors.Is(err, entities.ErrSignatureNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgSignatureNotFound)
		case errors.Is(err, entities.ErrPackageNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgPackageNotFound)
		case errors.Is(err, delivery.ErrNotStarted):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgNotStarted)
		case errors.Is(err, delivery.ErrAlreadyFinished):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgAlreadyFinished)
		case errors.Is(err, entities.ErrInvalidArgument):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PackageFromEntity(pkg))
}
