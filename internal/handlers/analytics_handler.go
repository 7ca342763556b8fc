package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

// AnalyticsSummary returns appointment counts bucketed by calendar day over
// the lookback window, plus user counts grouped by role. Empty buckets and
// zero-member roles are absent.
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	ctx := c.Request.Context()
	series, err := h.Store.CountByDay(ctx, models.AppointmentCollection, "created_at", since)
	if err != nil {
		storeError(c, err, "")
		return
	}
	if series == nil {
		series = []store.DateCount{}
	}

	roles, err := h.Store.CountByValue(ctx, models.UserCollection, "role")
	if err != nil {
		storeError(c, err, "")
		return
	}
	usersByRole := make([]gin.H, len(roles))
	for i, r := range roles {
		usersByRole[i] = gin.H{"role": r.Value, "count": r.Count}
	}

	c.JSON(http.StatusOK, gin.H{"appointments": series, "users_by_role": usersByRole})
}
