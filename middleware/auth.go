package middleware

import (
	"net/http"
	"strings"

	"orchids/access"
	"orchids/auth"
	"orchids/models"

	"github.com/gin-gonic/gin"
)

// AuthRequired resolves the bearer token to a caller id and stores it for
// the handlers. Any failure is a uniform 401.
func AuthRequired(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		access.SetCaller(c, userID)
		c.Next()
	}
}

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: access.MsgUnauthorized})
}
