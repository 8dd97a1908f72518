package response

import (
	"encoding/json"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error - ответ {"error": msg}
func Error(w http.ResponseWriter, log errorLogger, status int, msg string) {
	JSON(w, log, status, dto.ErrorResponse{Error: msg})
}

// Internal логирует причину, клиенту уходит только общий текст
func Internal(w http.ResponseWriter, log errorLogger, err error) {
	log.Error("request failed", logger.NewField("error", err))
	Error(w, log, http.StatusInternalServerError, dto.MsgInternalServerError)
}
