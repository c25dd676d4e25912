package server

import (
	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/http/handlers"
	"github.com/growthpilot/backend/internal/http/middleware"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	CORSOrigins    []string
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter

	HealthHandler   *handlers.HealthHandler
	TopicHandler    *handlers.TopicHandler
	PromptHandler   *handlers.PromptHandler
	AssembleHandler *handlers.AssembleHandler
	AdminHandler    *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	api.Use(cfg.RateLimiter.Middleware())
	{
		api.GET("/topics", cfg.TopicHandler.List)
		api.GET("/topics/:topic_id", cfg.TopicHandler.Get)
		api.POST("/topics/:topic_id/assemble", cfg.AssembleHandler.Assemble)
	}

	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.POST("/topics", cfg.TopicHandler.Create)
		admin.PATCH("/topics/:topic_id", cfg.TopicHandler.Patch)
		admin.DELETE("/topics/:topic_id", cfg.TopicHandler.Delete)

		admin.GET("/topics/:topic_id/prompts", cfg.PromptHandler.ListSlots)
		admin.GET("/topics/:topic_id/prompts/:slot", cfg.PromptHandler.Get)
		admin.PUT("/topics/:topic_id/prompts/:slot", cfg.PromptHandler.Save)
		admin.DELETE("/topics/:topic_id/prompts/:slot", cfg.PromptHandler.Delete)

		admin.POST("/reconcile", cfg.AdminHandler.Reconcile)
		admin.POST("/reconcile/:topic_id", cfg.AdminHandler.SeedOne)
		admin.GET("/reconcile/validate", cfg.AdminHandler.Validate)
	}

	return router
}
