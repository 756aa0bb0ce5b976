package handler

import (
	"context"
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	client    *mongo.Client
	startedAt time.Time
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{
		client:    client,
		startedAt: time.Now(),
	}
}

// GetHealth reports process uptime, host resource usage and database
// reachability. Returns 503 when the database ping fails.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	status := http.StatusOK
	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":         dbStatus,
		"uptime":         time.Since(h.startedAt).String(),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
