package app

import (
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/http/handlers"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Topic    *handlers.TopicHandler
	Prompt   *handlers.PromptHandler
	Assemble *handlers.AssembleHandler
	Admin    *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, registry *topics.Registry, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Topic:    handlers.NewTopicHandler(log, serviceset.Topics),
		Prompt:   handlers.NewPromptHandler(log, serviceset.PromptContent),
		Assemble: handlers.NewAssembleHandler(log, registry, serviceset.Resolver, serviceset.PromptBundles),
		Admin:    handlers.NewAdminHandler(log, serviceset.Reconciler),
	}
}
