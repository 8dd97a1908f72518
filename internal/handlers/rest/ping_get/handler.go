package ping_get

import (
	"net/http"
	"time"

	"fastfeet/internal/handlers/rest/response"
)

type pingResponse struct {
	Message    string `json:"message"`
	ServerTime string `json:"server_time"`
}

// Handler отдаёт pong и текущее время сервиса в его часовом поясе,
// по этому времени считается окно выдачи посылок
type Handler struct {
	log   handlerLogger
	clock Clock
}

func New(log handlerLogger, clock Clock) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		clock: clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.log, http.StatusOK, pingResponse{
		Message:    "pong",
		ServerTime: h.clock.Now().Format(time.RFC3339),
	})
}
