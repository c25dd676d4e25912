package app

import (
	"github.com/growthpilot/backend/internal/http/middleware"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

type Middleware struct {
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth:        middleware.NewAuthMiddleware(log, cfg.JWTSecretKey),
		RateLimiter: middleware.NewRateLimiter(log, cfg.DefaultRateLimit, cfg.RateLimitOverrides),
	}
}
