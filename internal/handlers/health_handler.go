package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Rural Health Platform Backend Running"})
}

func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// TestDatabase reports store connectivity. It never fails the request: every
// failure mode degrades to a descriptive status string in the body so the
// endpoint stays usable as a health check during partial outages.
func (h *Handler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.Store == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "available"
	if os.Getenv("MONGO_URI") != "" {
		resp["database_url"] = "set"
	} else {
		resp["database_url"] = "not set"
	}
	resp["database_name"] = h.DatabaseName

	ctx := c.Request.Context()
	if err := h.Store.Ping(ctx); err != nil {
		resp["database"] = "error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, resp)
		return
	}
	resp["connection_status"] = "connected"

	if names, err := h.Store.Collections(ctx); err != nil {
		resp["database"] = "connected but error: " + truncate(err.Error(), 50)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
		resp["database"] = "connected and working"
	}
	c.JSON(http.StatusOK, resp)
}
