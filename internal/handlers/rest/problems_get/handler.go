package problems_get

import (
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/pkg/middlewares/auth"
)

// Handler - все проблемы доставки, только для администратора
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

	problems, err := h.service.GetProblems(r.Context())
	if err != nil {
		response.Internal(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProblemsFromEntities(problems))
}
