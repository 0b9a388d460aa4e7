package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iac-appeals/aip-sync/internal/http/dto"
	"github.com/iac-appeals/aip-sync/internal/service"
)

// SupportHandler serves read-only lookups against the local audit trail. It
// operates on a case id, not the caller's session, so support staff can
// inspect any case they hold the number for.
type SupportHandler struct {
	appeals service.UpdateAppealService
}

func NewSupportHandler(appeals service.UpdateAppealService) *SupportHandler {
	return &SupportHandler{appeals: appeals}
}

// ListSubmissions returns a case's submission history, newest first.
func (h *SupportHandler) ListSubmissions(c *gin.Context) {
	ctx := c.Request.Context()

	caseID, err := strconv.ParseInt(c.Param("caseId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}

	records, err := h.appeals.Submissions(ctx, caseID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list submissions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponses(records))
}
