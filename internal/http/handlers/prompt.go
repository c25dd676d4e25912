package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/http/response"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/requestdata"
	"github.com/growthpilot/backend/internal/services"
)

type PromptHandler struct {
	log     *logger.Logger
	prompts services.PromptContentService
}

func NewPromptHandler(log *logger.Logger, prompts services.PromptContentService) *PromptHandler {
	return &PromptHandler{
		log:     log.With("handler", "PromptHandler"),
		prompts: prompts,
	}
}

func (h *PromptHandler) ListSlots(c *gin.Context) {
	slots, err := h.prompts.ListSlots(c.Request.Context(), c.Param("topic_id"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"slots": slots})
}

func (h *PromptHandler) Get(c *gin.Context) {
	content, err := h.prompts.Get(c.Request.Context(), c.Param("topic_id"), topics.Slot(c.Param("slot")))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"content": content})
}

func (h *PromptHandler) Save(c *gin.Context) {
	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	updatedBy := "admin"
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
		updatedBy = rd.UserID.String()
	}

	err := h.prompts.Save(c.Request.Context(), c.Param("topic_id"), topics.Slot(c.Param("slot")), body.Content, updatedBy)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (h *PromptHandler) Delete(c *gin.Context) {
	err := h.prompts.Delete(c.Request.Context(), c.Param("topic_id"), topics.Slot(c.Param("slot")))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondNoContent(c)
}
