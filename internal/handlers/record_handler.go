package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

func (h *Handler) CreateHealthRecord(c *gin.Context) {
	var rec models.HealthRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		bindError(c, err)
		return
	}
	rec.ApplyDefaults()

	id, err := h.Store.Create(c.Request.Context(), models.HealthRecordCollection, &rec)
	if err != nil {
		storeError(c, err, "Record not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListHealthRecords(c *gin.Context) {
	filter := map[string]interface{}{}
	if v := c.Query("patient_id"); v != "" {
		filter["patient_id"] = v
	}
	if v := c.Query("doctor_id"); v != "" {
		filter["doctor_id"] = v
	}

	items, err := h.Store.Find(c.Request.Context(), models.HealthRecordCollection, filter, store.FindOptions{
		SortField: "visit_date",
		Limit:     limitQuery(c, 50),
	})
	if err != nil {
		storeError(c, err, "Record not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": emptyIfNil(items)})
}
