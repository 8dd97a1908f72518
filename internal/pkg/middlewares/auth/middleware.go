package auth

import (
	"errors"
	"net/http"
	"strings"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

const (
	bearerPrefix = "Bearer "

	tokenInvalidBody = `{"error":"Token invalid"}`
	internalBody     = `{"error":"Internal server error"}`
)

// Middleware кладет в контекст пользователя по Bearer токену.
// Без заголовка Authorization запрос идет дальше анонимно.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				writeError(w, log, http.StatusUnauthorized, tokenInvalidBody)
				return
			}

			principal, err := authenticator.Authenticate(r.Context(), strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				if errors.Is(err, entities.ErrAccessDenied) {
					writeError(w, log, http.StatusUnauthorized, tokenInvalidBody)
					return
				}
				log.With(logger.NewField("error", err)).Error("authenticate request")
				writeError(w, log, http.StatusInternalServerError, internalBody)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.With(logger.NewField("error", err)).Error("write auth response")
	}
}
