package problem_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/service/problem"
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

	var req dto.ReportProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		return
	}

	created, err := h.service.ReportProblem(r.Context(), packageID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, problem.ErrDescriptionRequired):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgDescriptionMissing)
		case errors.Is(err, entities.ErrPackageNotFound):
			response.Error(w, h.log, http.StatusNotFound, dto.MsgPackageNotFound)
		case errors.Is(err, entities.ErrInvalidArgument):
			response.Error(w, h.log, http.StatusBadRequest, dto.MsgValidationFails)
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProblemFromEntity(created))
}
