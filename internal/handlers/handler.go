package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

// Handler carries the store every route works against. Tests substitute a
// store.Memory here.
type Handler struct {
	Store        store.Store
	DatabaseName string
}

func NewHandler(s store.Store, databaseName string) *Handler {
	return &Handler{Store: s, DatabaseName: databaseName}
}

// Routes registers the full HTTP surface on the given engine.
func Routes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)

	api := r.Group("/api")
	{
		api.GET("/hello", h.Hello)

		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments", h.ListAppointments)
		api.POST("/appointments/bulk_sync", h.BulkSyncAppointments)

		api.GET("/medicines/search", h.SearchMedicines)

		api.POST("/stock", h.CreateStock)
		api.GET("/stock", h.ListStock)
		api.GET("/stock/check", h.CheckStock)
		api.PATCH("/stock/:id", h.UpdateStock)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.PATCH("/doctors/:id/availability", h.UpdateDoctorAvailability)

		api.POST("/records", h.CreateHealthRecord)
		api.GET("/records", h.ListHealthRecords)

		api.POST("/consultations/logs", h.CreateConsultationLog)

		api.GET("/analytics/summary", h.AnalyticsSummary)
	}
}

// bindError answers a failed JSON bind with per-field detail when available.
func bindError(c *gin.Context, err error) {
	resp := gin.H{"error": "invalid request body"}
	if details := models.ValidationDetails(err); details != nil {
		resp["fields"] = details
	}
	c.JSON(http.StatusBadRequest, resp)
}

// storeError translates an adapter failure at the route boundary. notFoundMsg
// is used when the error is a missing document; everything else degrades to a
// 500 with a truncated diagnostic.
func storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), 50)})
}

// limitQuery reads the limit query param, falling back to def on absence or
// garbage.
func limitQuery(c *gin.Context, def int64) int64 {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// emptyIfNil keeps list responses as [] instead of null.
func emptyIfNil(items []map[string]interface{}) []map[string]interface{} {
	if items == nil {
		return []map[string]interface{}{}
	}
	return items
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
