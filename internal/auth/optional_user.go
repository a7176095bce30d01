package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const DemoUserID = "demo-user"

// OptionalUser sets the owner id from X-User-Id without enforcing auth,
// falling back to DemoUserID. Use this only when Firebase is not configured.
func OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			uid = DemoUserID
		}

		c.Set(CtxUserID, uid)
		if email := strings.TrimSpace(c.GetHeader("X-User-Email")); email != "" {
			c.Set(CtxEmail, email)
		}
		c.Set(CtxAuthMode, ModeHeader)

		c.Next()
	}
}
