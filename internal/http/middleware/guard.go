package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-appeals/aip-sync/internal/journey"
	"github.com/iac-appeals/aip-sync/internal/service"
)

// JourneyGuard rejects requests for journey paths the appeal's current status
// does not allow. Runs after RequireAuth.
func JourneyGuard(appeals service.UpdateAppealService, guard *journey.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		path := c.Request.URL.Path

		appeal, err := appeals.GetSession(ctx, UserToken(c))
		if err != nil {
			slog.ErrorContext(ctx, "failed to resolve appeal for guard", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load appeal"})
			return
		}

		if !guard.IsAllowed(appeal.AppealStatus, path) {
			slog.WarnContext(ctx, "path not allowed for status",
				"path", path,
				"appeal_status", string(appeal.AppealStatus),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "not available at this stage of the appeal",
				"redirect": journey.PathOverview,
			})
			return
		}

		if guard.BlocksForPendingTimeExtension(appeal, path) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "a request for more time is awaiting a decision",
				"redirect": journey.PathOverview,
			})
			return
		}

		c.Next()
	}
}
