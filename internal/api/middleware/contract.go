package middleware

import (
	"context"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache/ratelimit"
)

// Authenticator проверяет токен администратора
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Admin, error)
}

// Limiter лимит запросов по идентификатору клиента
type Limiter interface {
	Allow(ctx context.Context, clientID string) (ratelimit.Decision, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
