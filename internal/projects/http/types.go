package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cursorcraft/cursorcraft-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc   *service.ProjectService
	limit gin.HandlerFunc
}

// New builds the handler. limit guards the rendering endpoints and may be nil.
func New(svc *service.ProjectService, limit gin.HandlerFunc) *Handler {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	return &Handler{svc: svc, limit: limit}
}

type documentResp struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}
