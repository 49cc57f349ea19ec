package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campus-connect/CampusTalk/internal/models"
	"github.com/campus-connect/CampusTalk/pkg/engine"
	"github.com/campus-connect/CampusTalk/pkg/logger"
	"github.com/campus-connect/CampusTalk/pkg/metrics"
	"github.com/campus-connect/CampusTalk/pkg/persona"
	"github.com/campus-connect/CampusTalk/pkg/response"
	"github.com/campus-connect/CampusTalk/pkg/tracker"
)

type chatMessageRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Persona string `json:"persona"`
	Text    string `json:"text" binding:"required"`
}

// ChatMessage handles one chat turn and persists its outcome.
func (h *Handlers) ChatMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "userId and text are required", nil)
		return
	}

	reply := h.engine.Respond(c.Request.Context(), req.UserID, persona.Type(req.Persona), req.Text)

	metrics.ChatMessages.WithLabelValues(string(reply.Persona), reply.Source).Inc()
	if reply.Source != engine.SourceFAQ && reply.Source != engine.SourceGenericFAQ {
		metrics.FallbackAnswers.WithLabelValues(reply.Source).Inc()
	}

	if err := models.CreateChatLog(h.db, &models.ChatLog{
		ReplyID:    reply.ID,
		UserID:     req.UserID,
		Persona:    string(reply.Persona),
		Message:    req.Text,
		Response:   reply.Text,
		Intent:     reply.Intent.Primary.Intent,
		Sentiment:  reply.Sentiment.Label,
		Topic:      reply.Topic,
		MatchScore: reply.MatchScore,
		Source:     reply.Source,
	}); err != nil {
		// the reply already succeeded, losing the log entry is tolerable
		logger.Error("persist chat log failed", zap.Error(err))
	}

	response.Success(c, "ok", reply)
}

// ChatHistory returns the tracked context and profile for a user.
func (h *Handlers) ChatHistory(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Fail(c, "userId is required", nil)
		return
	}

	history := h.engine.History(userID, tracker.TurnHistoryCap)
	if history == nil {
		history = []tracker.Turn{}
	}
	response.Success(c, "ok", gin.H{
		"history": history,
		"profile": h.engine.Profile(userID),
	})
}

// ClearChatHistory drops the user's tracked context.
func (h *Handlers) ClearChatHistory(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Fail(c, "userId is required", nil)
		return
	}

	h.engine.ClearHistory(userID)
	response.Success(c, "history cleared", nil)
}

// ChatSuggestions ranks candidate replies for an utterance.
func (h *Handlers) ChatSuggestions(c *gin.Context) {
	userID := c.Query("userId")
	message := c.Query("message")
	if userID == "" || message == "" {
		response.Fail(c, "userId and message are required", nil)
		return
	}

	response.Success(c, "ok", h.engine.Suggestions(userID, message))
}
