package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralcare/health-api/internal/models"
	"github.com/ruralcare/health-api/internal/store"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		bindError(c, err)
		return
	}
	user.ApplyDefaults()

	id, err := h.Store.Create(c.Request.Context(), models.UserCollection, &user)
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListUsers(c *gin.Context) {
	filter := map[string]interface{}{}
	if v := c.Query("role"); v != "" {
		filter["role"] = v
	}

	items, err := h.Store.Find(c.Request.Context(), models.UserCollection, filter, store.FindOptions{
		Limit: limitQuery(c, 100),
	})
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": emptyIfNil(items)})
}

// UpdateDoctorAvailability is the only write path for online_status.
func (h *Handler) UpdateDoctorAvailability(c *gin.Context) {
	var payload struct {
		OnlineStatus *bool `json:"online_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	doc, err := h.Store.UpdateFields(c.Request.Context(), models.UserCollection, c.Param("id"), map[string]interface{}{
		"online_status": *payload.OnlineStatus,
	})
	if err != nil {
		storeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, doc)
}
