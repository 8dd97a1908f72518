package deliveries_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/response"
)

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

	delivered, err := parseDelivered(r.URL.Query().Get("delivered"))
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	packages, err := h.service.GetDeliveries(r.Context(), entities.DeliveriesFilter{
		DeliverymanID: deliverymanID,
		Delivered:     delivered,
	})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrDeliverymanNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgDeliverymanNotFound)
		case errors.Is(err, entities.ErrInvalidArgument):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PackagesFromEntities(packages))
}

// parseDelivered: пусто = ожидающие доставки, принимает 0/1 и true/false
func parseDelivered(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
