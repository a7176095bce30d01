package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cursorcraft/cursorcraft-backend/internal/auth"
)

// Register mounts the identity endpoint.
func Register(rg *gin.RouterGroup) {
	rg.GET("/me", me)
}

func me(c *gin.Context) {
	uid := auth.UserID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"user_id": uid,
		"email":   auth.Email(c),
		"mode":    c.GetString(auth.CtxAuthMode),
	})
}
