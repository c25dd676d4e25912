package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/growthpilot/backend/internal/pkg/logger"
)

const (
	basicModelKey   = "config:model_code:basic"
	premiumModelKey = "config:model_code:premium"

	// Fallback pair used when redis is unreachable or the keys are unset.
	FallbackBasicModelCode   = "gpt-4o-mini"
	FallbackPremiumModelCode = "gpt-4o"

	defaultsCacheTTL = 5 * time.Minute
)

// ModelDefaults is the pair of model codes used when seeding a topic that
// carries no explicit override.
type ModelDefaults struct {
	Basic   string
	Premium string
}

type ModelDefaultsSource interface {
	Defaults(ctx context.Context) ModelDefaults
}

// StaticModelDefaults always answers with the hard-coded fallback pair.
// Used when no REDIS_ADDR is configured.
type StaticModelDefaults struct{}

func (StaticModelDefaults) Defaults(context.Context) ModelDefaults {
	return ModelDefaults{Basic: FallbackBasicModelCode, Premium: FallbackPremiumModelCode}
}

type modelDefaultsSource struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	cached    ModelDefaults
	fetchedAt time.Time
}

func NewModelDefaultsSource(log *logger.Logger) (ModelDefaultsSource, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &modelDefaultsSource{
		log: log.With("service", "ModelDefaultsSource"),
		rdb: rdb,
		ttl: defaultsCacheTTL,
		now: time.Now,
	}, nil
}

// Defaults returns the configured model codes, consulting redis at most
// once per TTL window. Any failure degrades to the fallback pair; seeding
// must never block on the config source.
func (s *modelDefaultsSource) Defaults(ctx context.Context) ModelDefaults {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.cached
	}

	out := ModelDefaults{Basic: FallbackBasicModelCode, Premium: FallbackPremiumModelCode}
	vals, err := s.rdb.MGet(ctx, basicModelKey, premiumModelKey).Result()
	if err != nil {
		s.log.Warn("model defaults fetch failed, using fallback", "error", err)
	} else {
		if v, ok := vals[0].(string); ok && v != "" {
			out.Basic = v
		}
		if v, ok := vals[1].(string); ok && v != "" {
			out.Premium = v
		}
	}

	s.cached = out
	s.fetchedAt = s.now()
	return out
}
