package handlers

import (
	"net/http"

	"orchids/access"
	"orchids/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetChat returns the chat with its messages.
func GetChat(store ChatStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := access.Authorize(c, store, access.KindChat)
		if !ok {
			return
		}

		chat, err := store.GetChat(c.Request.Context(), res.ChatID, res.ProjectID)
		if err != nil {
			respondOperationError(c, log, "get chat", err, access.MsgChatNotFound)
			return
		}

		c.JSON(http.StatusOK, models.ChatDetailResponse{Chat: chat})
	}
}

func UpdateChat(store ChatStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := access.Authorize(c, store, access.KindChat)
		if !ok {
			return
		}

		var req models.UpdateChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		chat, err := store.UpdateChat(c.Request.Context(), res.ChatID, res.ProjectID, req)
		if err != nil {
			respondOperationError(c, log, "update chat", err, access.MsgChatNotFound)
			return
		}

		c.JSON(http.StatusOK, models.ChatResponse{Chat: chat})
	}
}

func DeleteChat(store ChatStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := access.Authorize(c, store, access.KindChat)
		if !ok {
			return
		}

		if err := store.DeleteChat(c.Request.Context(), res.ChatID, res.ProjectID); err != nil {
			respondOperationError(c, log, "delete chat", err, access.MsgChatNotFound)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
	}
}
