package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
)

// CreateConsultationLog appends to the teleconsultation audit trail. Logs are
// append-only; no update or delete route exists.
func (h *Handler) CreateConsultationLog(c *gin.Context) {
	var entry models.ConsultationLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.Store.Create(c.Request.Context(), models.ConsultationLogCollection, &entry)
	if err != nil {
		storeError(c, err, "Consultation log not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
