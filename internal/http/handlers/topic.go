package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/http/response"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/services"
)

type TopicHandler struct {
	log    *logger.Logger
	topics services.TopicService
}

func NewTopicHandler(log *logger.Logger, topicService services.TopicService) *TopicHandler {
	return &TopicHandler{
		log:    log.With("handler", "TopicHandler"),
		topics: topicService,
	}
}

// List returns persisted records, or the merged view including registry
// defaults when ?merged=true.
func (h *TopicHandler) List(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	merged, _ := strconv.ParseBool(c.Query("merged"))

	var (
		records []*domain.TopicRecord
		err     error
	)
	if topicType := c.Query("topic_type"); topicType != "" {
		records, err = h.topics.ListByType(c.Request.Context(), topics.TopicType(topicType), includeInactive)
	} else if merged {
		records, err = h.topics.ListWithRegistryDefaults(c.Request.Context(), includeInactive)
	} else {
		records, err = h.topics.List(c.Request.Context(), includeInactive)
	}
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"topics": records})
}

func (h *TopicHandler) Get(c *gin.Context) {
	rec, err := h.topics.Get(c.Request.Context(), c.Param("topic_id"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, rec)
}

func (h *TopicHandler) Create(c *gin.Context) {
	var rec domain.TopicRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.topics.Create(c.Request.Context(), &rec)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (h *TopicHandler) Patch(c *gin.Context) {
	var patch domain.TopicPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.topics.Patch(c.Request.Context(), c.Param("topic_id"), &patch)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (h *TopicHandler) Delete(c *gin.Context) {
	hard, _ := strconv.ParseBool(c.Query("hard"))
	if err := h.topics.Delete(c.Request.Context(), c.Param("topic_id"), hard); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondNoContent(c)
}
