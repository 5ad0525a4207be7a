package handlers

import (
	"net/http"

	"skyline/models"
	"skyline/services/assistant"
	"skyline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var assistantService assistant.Service

// SetAssistantService wires the assistant used by the chat handler.
func SetAssistantService(svc assistant.Service) {
	assistantService = svc
}

// ChatHandler processes one conversational turn. The token is optional:
// anonymous callers can search and ask questions, while booking and account
// tools require a valid token.
func ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// An invalid or expired token downgrades the caller to anonymous rather
	// than failing the turn.
	var customerID int64
	if req.Token != "" {
		id, err := utils.ExtractCustomerIDFromToken(req.Token)
		if err != nil {
			logger.Warn("Chat token rejected", zap.Error(err))
		} else {
			customerID = id
		}
	}

	resp, err := assistantService.HandleTurn(c.Request.Context(), req, customerID)
	if err != nil {
		logger.Error("Chat turn failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
