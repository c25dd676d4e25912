package app

import (
	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		CORSOrigins:     cfg.CORSOrigins,
		AuthMiddleware:  middlewareset.Auth,
		RateLimiter:     middlewareset.RateLimiter,
		HealthHandler:   handlerset.Health,
		TopicHandler:    handlerset.Topic,
		PromptHandler:   handlerset.Prompt,
		AssembleHandler: handlerset.Assemble,
		AdminHandler:    handlerset.Admin,
	})
}
