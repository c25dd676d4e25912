package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/growthpilot/backend/internal/clients/gcp"
	"github.com/growthpilot/backend/internal/clients/redis"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

type Clients struct {
	PromptBlobs   gcp.PromptBlobStore
	ModelDefaults redis.ModelDefaultsSource
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	blobs, err := gcp.NewPromptBlobStore(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init prompt blob store: %w", err)
	}

	var defaults redis.ModelDefaultsSource
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) == "" {
		log.Warn("REDIS_ADDR not set, using static model defaults")
		defaults = redis.StaticModelDefaults{}
	} else {
		defaults, err = redis.NewModelDefaultsSource(log)
		if err != nil {
			log.Warn("redis model defaults unavailable, using static fallback", "error", err)
			defaults = redis.StaticModelDefaults{}
		}
	}

	return Clients{
		PromptBlobs:   blobs,
		ModelDefaults: defaults,
	}, nil
}
