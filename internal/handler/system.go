package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-connect/CampusTalk/pkg/config"
	"github.com/campus-connect/CampusTalk/pkg/persona"
	"github.com/campus-connect/CampusTalk/pkg/response"
)

var startTime = time.Now()

// HealthCheck reports liveness, including the database connection.
func (h *Handlers) HealthCheck(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database connection failed"})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database ping failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// SystemStatus reports runtime facts: corpus sizes, tracked users and
// uptime.
func (h *Handlers) SystemStatus(c *gin.Context) {
	response.Success(c, "ok", gin.H{
		"server":  config.GlobalConfig.ServerName,
		"mode":    config.GlobalConfig.Mode,
		"uptime":  time.Since(startTime).Round(time.Second).String(),
		"corpus":  h.engine.CorpusSize(),
		"tracker": h.engine.Stats(),
	})
}

type personaInfo struct {
	Type     persona.Type `json:"type"`
	Label    string       `json:"label"`
	Greeting string       `json:"greeting"`
}

// ListPersonas returns the selectable audiences and their greetings.
func (h *Handlers) ListPersonas(c *gin.Context) {
	all := persona.All()
	out := make([]personaInfo, 0, len(all))
	for _, p := range all {
		out = append(out, personaInfo{Type: p.Type, Label: p.Label, Greeting: p.Greeting})
	}
	response.Success(c, "ok", out)
}
