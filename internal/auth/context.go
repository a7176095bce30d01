package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	// CtxAuthMode records which middleware identified the caller.
	CtxAuthMode = "auth_mode"
)

const (
	ModeFirebase = "firebase"
	ModeHeader   = "header"
)

// UserID returns the owner id set by the auth middleware, or "".
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

func Email(c *gin.Context) string {
	return c.GetString(CtxEmail)
}
