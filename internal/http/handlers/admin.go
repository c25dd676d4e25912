package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/http/response"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/services"
)

// AdminHandler exposes the reconciliation surface: full reconcile,
// targeted seeding, and the read-only drift report.
type AdminHandler struct {
	log        *logger.Logger
	reconciler services.ReconcilerService
}

func NewAdminHandler(log *logger.Logger, reconciler services.ReconcilerService) *AdminHandler {
	return &AdminHandler{
		log:        log.With("handler", "AdminHandler"),
		reconciler: reconciler,
	}
}

func (h *AdminHandler) Reconcile(c *gin.Context) {
	forceUpdate, _ := strconv.ParseBool(c.Query("force_update"))
	dryRun, _ := strconv.ParseBool(c.Query("dry_run"))

	result := h.reconciler.Reconcile(c.Request.Context(), forceUpdate, dryRun)
	status := http.StatusOK
	if !result.Success() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

func (h *AdminHandler) SeedOne(c *gin.Context) {
	forceUpdate, _ := strconv.ParseBool(c.Query("force_update"))

	changed, err := h.reconciler.SeedOne(c.Request.Context(), c.Param("topic_id"), forceUpdate)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"changed": changed})
}

func (h *AdminHandler) Validate(c *gin.Context) {
	report, err := h.reconciler.Validate(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, report)
}
