package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/http/response"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/requestdata"
	"github.com/growthpilot/backend/internal/services"
)

// AssembleHandler resolves a topic's parameters and returns the assembled
// prompt bundle. The LLM call itself happens elsewhere; this endpoint
// exists so admins and the invocation service can obtain a ready-to-send
// bundle. Entity values are supplied inline; the production invocation
// path wires real accessors instead.
type AssembleHandler struct {
	log      *logger.Logger
	registry *topics.Registry
	resolver services.ParameterResolver
	bundles  services.PromptBundleService
}

func NewAssembleHandler(log *logger.Logger, registry *topics.Registry, resolver services.ParameterResolver, bundles services.PromptBundleService) *AssembleHandler {
	return &AssembleHandler{
		log:      log.With("handler", "AssembleHandler"),
		registry: registry,
		resolver: resolver,
		bundles:  bundles,
	}
}

type assembleRequest struct {
	Payload  map[string]interface{} `json:"payload"`
	Entities map[string]interface{} `json:"entities"`
	Computed map[string]interface{} `json:"computed"`
	Resume   bool                   `json:"resume"`
}

func (h *AssembleHandler) Assemble(c *gin.Context) {
	topicID := c.Param("topic_id")

	def, ok := h.registry.Get(topicID)
	if !ok {
		response.RespondDomainError(c, &topics.TopicNotFoundError{TopicID: topicID})
		return
	}

	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	if !rd.Tier.AtLeast(def.TierLevel) {
		response.RespondError(c, http.StatusForbidden, "tier_required",
			fmt.Errorf("topic %q requires the %s tier", topicID, def.TierLevel))
		return
	}

	var req assembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	rc := &services.RequestContext{
		Payload:   req.Payload,
		Computed:  req.Computed,
		Accessors: accessorsFromEntities(req.Entities),
	}
	params, err := h.resolver.Resolve(c.Request.Context(), def, rc)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}

	bundle, err := h.bundles.GetPromptBundle(c.Request.Context(), topicID, params, rd.Tier, req.Resume)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"bundle": bundle,
		"params": params,
	})
}

func accessorsFromEntities(entities map[string]interface{}) map[topics.SourceKind]services.Accessor {
	out := map[topics.SourceKind]services.Accessor{}
	for raw, value := range entities {
		kind := topics.SourceKind(raw)
		if !kind.Valid() {
			continue
		}
		v := value
		out[kind] = func(context.Context) (interface{}, error) { return v, nil }
	}
	return out
}
