package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campus-connect/CampusTalk/internal/models"
	"github.com/campus-connect/CampusTalk/pkg/analytics"
	"github.com/campus-connect/CampusTalk/pkg/logger"
	"github.com/campus-connect/CampusTalk/pkg/response"
)

type predictRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Predict returns the behavior, satisfaction and escalation forecasts
// for a user and the message they are composing.
func (h *Handlers) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "userId and message are required", nil)
		return
	}

	response.Success(c, "ok", h.engine.Predict(req.UserID, req.Message))
}

type summaryRequest struct {
	Messages []analytics.Message `json:"messages" binding:"required"`
}

// Summarize condenses a posted transcript.
func (h *Handlers) Summarize(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "messages are required", nil)
		return
	}

	response.Success(c, "ok", h.engine.Summarize(req.Messages))
}

// Overview aggregates tracker stats, the sentiment trend and persisted
// log counts.
func (h *Handlers) Overview(c *gin.Context) {
	persisted, err := models.CountChatLogs(h.db)
	if err != nil {
		logger.Error("count chat logs failed", zap.Error(err))
	}

	response.Success(c, "ok", gin.H{
		"tracker":       h.engine.Stats(),
		"analytics":     h.engine.AnalyticsSummary(),
		"persistedLogs": persisted,
	})
}
