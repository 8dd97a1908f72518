package problem_cancel_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/pkg/middlewares/auth"
	"fastfeet/internal/service/problem"
)

// Handler - отмена доставки по проблеме, только для администратора
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

	problemID, err := strconv.ParseInt(mux.Vars(r)["problemId"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	pkg, err := h.service.CancelDelivery(r.Context(), problemID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrProblemNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgProblemNotFound)
		case errors.Is(err, problem.ErrAlreadyCancelled):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgAlreadyCancelled)
		case errors.Is(err, entities.ErrInvalidArgument):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CancelDeliveryResponse{
		OK:      dto.MsgProblemDeleted,
		Package: dto.PackageFromEntity(pkg),
	})
}
