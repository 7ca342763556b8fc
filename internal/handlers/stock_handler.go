package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

func (h *Handler) CreateStock(c *gin.Context) {
	var stock models.Stock
	if err := c.ShouldBindJSON(&stock); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.Store.Create(c.Request.Context(), models.StockCollection, &stock)
	if err != nil {
		storeError(c, err, "Stock not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListStock(c *gin.Context) {
	items, err := h.Store.Find(c.Request.Context(), models.StockCollection, stockFilter(c), store.FindOptions{
		Limit: limitQuery(c, 100),
	})
	if err != nil {
		storeError(c, err, "Stock not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": emptyIfNil(items)})
}

// CheckStock runs the same filter as ListStock but answers under a "stocks"
// key. Both envelopes are separate client contracts and stay distinct.
func (h *Handler) CheckStock(c *gin.Context) {
	stocks, err := h.Store.Find(c.Request.Context(), models.StockCollection, stockFilter(c), store.FindOptions{
		Limit: 100,
	})
	if err != nil {
		storeError(c, err, "Stock not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stocks": emptyIfNil(stocks)})
}

func (h *Handler) UpdateStock(c *gin.Context) {
	var patch models.StockPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	doc, err := h.Store.UpdateFields(c.Request.Context(), models.StockCollection, c.Param("id"), fields)
	if err != nil {
		storeError(c, err, "Stock not found")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func stockFilter(c *gin.Context) map[string]interface{} {
	filter := map[string]interface{}{}
	if v := c.Query("facility_id"); v != "" {
		filter["facility_id"] = v
	}
	if v := c.Query("medicine_id"); v != "" {
		filter["medicine_id"] = v
	}
	return filter
}
