package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"shipping/internal/handlers/rest/respond"
	"shipping/internal/session"
	"shipping/pkg/logger"
)

const bearerPrefix = "bearer "

// Middleware открывает сессию из заголовка Authorization и кладет ее в контекст запроса.
// Подпись токена проверяет сервер заказов, здесь отсекаются только отсутствующие и истекшие токены.
func Middleware(log handlerLogger, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				reject(w, log, r, err)
				return
			}

			s, err := session.New(token)
			if err != nil {
				reject(w, log, r, err)
				return
			}
			if !s.Valid(now()) {
				reject(w, log, r, session.ErrExpired)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), s)))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", session.ErrNoCredential
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), nil
}

func reject(w http.ResponseWriter, log handlerLogger, r *http.Request, err error) {
	log.With(
		logger.NewField("path", r.URL.Path),
		logger.NewField("error", err),
	).Warn("request rejected")

	if !errors.Is(err, session.ErrNoCredential) && !errors.Is(err, session.ErrExpired) {
		err = errors.Join(session.ErrNoCredential, err)
	}

	w.Header().Set("WWW-Authenticate", `Bearer realm="orders"`)
	respond.Error(w, log, err)
}
