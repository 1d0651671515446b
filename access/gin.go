package access

import (
	"orchids/models"

	"github.com/gin-gonic/gin"
)

const (
	callerKey = "user_id"

	ProjectParam = "id"
	ChatParam    = "chatId"
)

// SetCaller records the authenticated caller on the request context.
func SetCaller(c *gin.Context, userID string) {
	c.Set(callerKey, userID)
}

// Caller returns the authenticated caller, if any. It never touches the
// database.
func Caller(c *gin.Context) (string, bool) {
	userID := c.GetString(callerKey)
	return userID, userID != ""
}

// RequireCaller is the guard for collection endpoints. It writes the 401
// itself and returns false when there is no caller.
func RequireCaller(c *gin.Context) (string, bool) {
	userID, ok := Caller(c)
	if !ok {
		Deny(c, Result{Outcome: Unauthenticated})
		return "", false
	}
	return userID, true
}

// Authorize guards a single-resource endpoint. The ids come from the path
// parameters ProjectParam and ChatParam. On any outcome other than Found
// the response is written and false is returned.
func Authorize(c *gin.Context, checker Checker, kind Kind) (Result, bool) {
	userID, ok := RequireCaller(c)
	if !ok {
		return Result{Outcome: Unauthenticated}, false
	}

	res := Resolve(c.Request.Context(), checker, userID, Target{
		Kind:      kind,
		ProjectID: c.Param(ProjectParam),
		ChatID:    c.Param(ChatParam),
	})
	if res.Outcome != Found {
		Deny(c, res)
		return res, false
	}
	return res, true
}

// Deny writes the fixed response for a denied outcome.
func Deny(c *gin.Context, res Result) {
	if res.Err != nil {
		_ = c.Error(res.Err)
	}
	c.AbortWithStatusJSON(res.Status(), models.ErrorResponse{Error: res.Message()})
}
