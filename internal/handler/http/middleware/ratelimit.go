// Package middleware provides HTTP middleware shared by the analytics
// services.
package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"analytics-demo/internal/handler/http/respond"
)

// RateLimiter applies a token-bucket limit to the whole API surface. The
// services are demo fodder rather than real APIs, so one shared bucket is
// enough to keep a flood of synthetic traffic from skewing the simulated
// signal.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimiter allows perSecond sustained requests with the given burst.
func NewRateLimiter(perSecond float64, burst int, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter.Allow() {
			rl.logger.Warn("request rate limited",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))
			respond.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
