package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-connect/CampusTalk/pkg/config"
	"github.com/campus-connect/CampusTalk/pkg/engine"
	"github.com/campus-connect/CampusTalk/pkg/metrics"
)

// Handlers wires the HTTP surface to the engine and the database. The
// engine owns all conversational state; the database only persists FAQ
// seeds and chat logs.
type Handlers struct {
	db     *gorm.DB
	engine *engine.Engine
}

func NewHandlers(db *gorm.DB, eng *engine.Engine) *Handlers {
	return &Handlers{db: db, engine: eng}
}

// Register mounts every route under the configured API prefix.
func (h *Handlers) Register(r *gin.Engine) {
	api := r.Group(config.GlobalConfig.APIPrefix)

	chat := api.Group("chat")
	{
		chat.POST("/message", h.ChatMessage)
		chat.GET("/history", h.ChatHistory)
		chat.DELETE("/history", h.ClearChatHistory)
		chat.GET("/suggestions", h.ChatSuggestions)
	}

	analytics := api.Group("analytics")
	{
		analytics.POST("/predict", h.Predict)
		analytics.POST("/summary", h.Summarize)
		analytics.GET("/overview", h.Overview)
	}

	api.GET("/personas", h.ListPersonas)

	system := api.Group("system")
	{
		system.GET("/health", h.HealthCheck)
		system.GET("/status", h.SystemStatus)
	}

	api.GET(config.GlobalConfig.MonitorPrefix, metrics.Handler())
}
