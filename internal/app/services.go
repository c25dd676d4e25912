package app

import (
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/services"
)

type Services struct {
	Resolver      services.ParameterResolver
	PromptBundles services.PromptBundleService
	Topics        services.TopicService
	PromptContent services.PromptContentService
	Reconciler    services.ReconcilerService
}

func wireServices(log *logger.Logger, registry *topics.Registry, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")

	bundles := services.NewPromptBundleService(log, registry, reposet.TopicRecord, clients.PromptBlobs)

	return Services{
		Resolver:      services.NewParameterResolver(log),
		PromptBundles: bundles,
		Topics:        services.NewTopicService(log, registry, reposet.TopicRecord, clients.PromptBlobs, clients.ModelDefaults, bundles),
		PromptContent: services.NewPromptContentService(log, registry, reposet.TopicRecord, clients.PromptBlobs, bundles),
		Reconciler:    services.NewReconcilerService(log, registry, reposet.TopicRecord, clients.PromptBlobs, clients.ModelDefaults, bundles),
	}
}
