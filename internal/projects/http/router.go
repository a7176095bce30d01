package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.limit, h.create)
	rg.GET("", h.list)
	rg.GET("/:public_id", h.get)
	rg.PATCH("/:public_id", h.limit, h.update)
	rg.DELETE("/:public_id", h.delete)
	rg.GET("/:public_id/documents", h.documents)
	rg.GET("/:public_id/documents/:type", h.document)
	rg.GET("/:public_id/archive", h.limit, h.archive)
	rg.POST("/:public_id/export", h.limit, h.export)
}

// RegisterGenerate attaches the stateless preview endpoint.
func (h *Handler) RegisterGenerate(rg *gin.RouterGroup) {
	rg.POST("/generate", h.limit, h.generate)
}
