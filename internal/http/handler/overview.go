package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-appeals/aip-sync/internal/http/dto"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/service"
)

type OverviewHandler struct {
	appeals  service.UpdateAppealService
	resolver *journey.NextStepResolver
}

func NewOverviewHandler(appeals service.UpdateAppealService, resolver *journey.NextStepResolver) *OverviewHandler {
	return &OverviewHandler{appeals: appeals, resolver: resolver}
}

// Get reloads the appeal from upstream and returns the overview payload. A
// fresh load keeps the overview consistent with externally driven state
// changes (directions, decisions, respondent uploads).
func (h *OverviewHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	appeal, err := h.appeals.LoadAppeal(ctx, middleware.UserToken(c))
	if err != nil {
		slog.ErrorContext(ctx, "failed to load appeal", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load appeal"})
		return
	}

	step, err := h.resolver.Resolve(ctx, appeal)
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve next step", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve next step"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(appeal, &step))
}

// GetSession returns the cached aggregate without an upstream round trip.
func (h *OverviewHandler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	appeal, err := h.appeals.GetSession(ctx, middleware.UserToken(c))
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	c.JSON(http.StatusOK, dto.AppealResponse{Appeal: appeal})
}
