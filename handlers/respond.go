package handlers

import (
	"net/http"

	"orchids/database"
	"orchids/middleware"
	"orchids/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Error: message})
}

// respondOperationError reports a failure of the data operation that ran
// after access was granted. A row that disappeared in between is still a
// not-found; anything else is a 500 carrying the database's own message.
func respondOperationError(c *gin.Context, log *zap.Logger, op string, err error, notFound string) {
	if database.IsNotFound(err) {
		respondError(c, http.StatusNotFound, notFound)
		return
	}

	log.Error(op+" failed",
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	respondError(c, http.StatusInternalServerError, database.Message(err))
}
