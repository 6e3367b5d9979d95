package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
)

const msgTooManyRequests = "too many requests, please try again later"

// RateLimit ограничивает запросы по IP клиента. При недоступном Redis
// запрос пропускается
func RateLimit(limiter Limiter, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)

			decision, err := limiter.Allow(r.Context(), client)
			if err != nil {
				logger.Warn("RateLimit: limiter unavailable for client=%s: %v", client, err)
				next.ServeHTTP(w, r)
				return
			}

			if !decision.Allowed {
				retry := int(math.Ceil(decision.RetryAfter.Seconds()))
				if retry < 1 {
					retry = 1
				}
				logger.Warn("RateLimit: client=%s exceeded limit on %s %s", client, r.Method, r.URL.Path)
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP адрес из RemoteAddr, заголовки прокси разбирает handlers.ProxyHeaders
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
