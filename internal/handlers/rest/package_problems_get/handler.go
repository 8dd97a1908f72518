package package_problems_get

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
	packageID, err := strconv.ParseInt(mux.Vars(r)["packageId"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	problems, err := h.service.GetPackageProblems(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrDeliveryNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgDeliveryNotFound)
		case errors.Is(err, entities.ErrInvalidArgument):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProblemsFromEntities(problems))
}
