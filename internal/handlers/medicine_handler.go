package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
)

// SearchMedicines does a case-insensitive substring search over the catalog's
// name and generic_name. Without a query it returns up to limit documents
// unfiltered.
func (h *Handler) SearchMedicines(c *gin.Context) {
	items, err := h.Store.FindSubstring(
		c.Request.Context(),
		models.MedicineCollection,
		[]string{"name", "generic_name"},
		c.Query("q"),
		limitQuery(c, 20),
	)
	if err != nil {
		storeError(c, err, "Medicine not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": emptyIfNil(items)})
}
