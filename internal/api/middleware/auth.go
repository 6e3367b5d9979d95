package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/auth"
)

type contextKey string

const adminKey contextKey = "admin"

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
)

// AdminAuth пропускает запрос только с валидным Bearer токеном администратора
func AdminAuth(authenticator Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			admin, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					logger.Warn("AdminAuth: rejected token for %s %s: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("AdminAuth: failed to authenticate: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin возвращает администратора, положенного AdminAuth
func GetAdmin(ctx context.Context) (*domain.Admin, bool) {
	admin, ok := ctx.Value(adminKey).(*domain.Admin)
	return admin, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
