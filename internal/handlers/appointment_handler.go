package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

func (h *Handler) CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		bindError(c, err)
		return
	}
	appt.ApplyDefaults()

	id, err := h.Store.Create(c.Request.Context(), models.AppointmentCollection, &appt)
	if err != nil {
		storeError(c, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": "created"})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filter := map[string]interface{}{}
	if v := c.Query("patient_id"); v != "" {
		filter["patient_id"] = v
	}
	if v := c.Query("doctor_id"); v != "" {
		filter["doctor_id"] = v
	}

	items, err := h.Store.Find(c.Request.Context(), models.AppointmentCollection, filter, store.FindOptions{
		SortField: "created_at",
		Limit:     limitQuery(c, 50),
	})
	if err != nil {
		storeError(c, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": emptyIfNil(items)})
}

// BulkSyncAppointments persists a batch of client-queued appointments. Items
// are independent: one item failing validation or insertion never aborts the
// rest, and the response slices keep the input order so clients can correlate
// by offline_temp_id.
func (h *Handler) BulkSyncAppointments(c *gin.Context) {
	var payload struct {
		Appointments []json.RawMessage `json:"appointments" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	inserted := make([]gin.H, 0, len(payload.Appointments))
	failed := make([]gin.H, 0)

	for _, raw := range payload.Appointments {
		// Recover the correlation token even when the item itself is bad.
		var probe struct {
			OfflineTempID string `json:"offline_temp_id"`
		}
		_ = json.Unmarshal(raw, &probe)

		var appt models.Appointment
		if err := json.Unmarshal(raw, &appt); err != nil {
			failed = append(failed, gin.H{"offline_temp_id": probe.OfflineTempID, "error": err.Error()})
			continue
		}
		if err := models.Validate(&appt); err != nil {
			failed = append(failed, gin.H{"offline_temp_id": probe.OfflineTempID, "error": err.Error()})
			continue
		}
		appt.ApplyDefaults()

		id, err := h.Store.Create(c.Request.Context(), models.AppointmentCollection, &appt)
		if err != nil {
			failed = append(failed, gin.H{"offline_temp_id": appt.OfflineTempID, "error": err.Error()})
			continue
		}
		inserted = append(inserted, gin.H{"offline_temp_id": appt.OfflineTempID, "id": id})
	}

	c.JSON(http.StatusOK, gin.H{"inserted": inserted, "errors": failed})
}
