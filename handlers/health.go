package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root returns the API banner
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "HRMS Lite API is running",
		"version": apiVersion,
	})
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	// Check database connection
	err := h.db.Ping()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
