package app

import (
	"strings"

	"github.com/growthpilot/backend/internal/http/middleware"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/utils"
)

type Config struct {
	Port         string
	JWTSecretKey string
	CORSOrigins  []string

	DefaultRateLimit   middleware.RateLimit
	RateLimitOverrides map[string]middleware.RateLimit
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)

	var origins []string
	for _, o := range strings.Split(utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	defaultLimit := middleware.RateLimit{
		Capacity:   utils.GetEnvAsFloat("RATE_LIMIT_CAPACITY", 30, log),
		RefillRate: utils.GetEnvAsFloat("RATE_LIMIT_REFILL_PER_SEC", 0.5, log),
	}
	// Assembly fans out to the blob store and model provider, so it gets a
	// tighter bucket than plain reads.
	assembleLimit := middleware.RateLimit{
		Capacity:   utils.GetEnvAsFloat("RATE_LIMIT_ASSEMBLE_CAPACITY", 10, log),
		RefillRate: utils.GetEnvAsFloat("RATE_LIMIT_ASSEMBLE_REFILL_PER_SEC", 0.2, log),
	}

	return Config{
		Port:             port,
		JWTSecretKey:     jwtSecretKey,
		CORSOrigins:      origins,
		DefaultRateLimit: defaultLimit,
		RateLimitOverrides: map[string]middleware.RateLimit{
			"/api/topics/:topic_id/assemble": assembleLimit,
		},
	}
}
