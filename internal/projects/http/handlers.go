package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cursorcraft/cursorcraft-backend/internal/archive"
	"github.com/cursorcraft/cursorcraft-backend/internal/auth"
	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/cursorcraft/cursorcraft-backend/internal/documents"
	"github.com/cursorcraft/cursorcraft-backend/internal/export"
	"github.com/cursorcraft/cursorcraft-backend/internal/logging"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
)

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrInvalidConfig):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, documents.ErrUnknownType):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, export.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
	default:
		logging.FromContext(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

func (h *Handler) create(c *gin.Context) {
	var req docgen.ProjectConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, set, err := h.svc.Create(c.Request.Context(), auth.UserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p, "documents": set})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), auth.UserID(c), c.Param("public_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil || patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, set, err := h.svc.Update(c.Request.Context(), auth.UserID(c), c.Param("public_id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p, "documents": set})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserID(c), c.Param("public_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) documents(c *gin.Context) {
	p, set, err := h.svc.Documents(c.Request.Context(), auth.UserID(c), c.Param("public_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]documentResp, 0, len(documents.AllTypes()))
	for _, t := range documents.AllTypes() {
		items = append(items, documentResp{
			Type:     string(t),
			Title:    t.Title(),
			FileName: t.FileName(),
			Content:  t.Content(set),
		})
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project_id": p.PublicID, "documents": items})
}

func (h *Handler) document(c *gin.Context) {
	t, err := documents.ParseType(c.Param("type"))
	if err != nil {
		writeError(c, err)
		return
	}

	_, content, err := h.svc.Document(c.Request.Context(), auth.UserID(c), c.Param("public_id"), t)
	if err != nil {
		writeError(c, err)
		return
	}

	if c.Query("download") == "1" || c.Query("download") == "true" {
		contentType := "text/markdown; charset=utf-8"
		if t == documents.TypeCursorRules {
			contentType = "text/plain; charset=utf-8"
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", t.FileName()))
		c.Data(http.StatusOK, contentType, []byte(content))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "document": documentResp{
		Type:     string(t),
		Title:    t.Title(),
		FileName: t.FileName(),
		Content:  content,
	}})
}

func (h *Handler) archive(c *gin.Context) {
	p, b, err := h.svc.Archive(c.Request.Context(), auth.UserID(c), c.Param("public_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.FileName(p.Name)))
	c.Data(http.StatusOK, "application/zip", b)
}

func (h *Handler) export(c *gin.Context) {
	loc, err := h.svc.Export(c.Request.Context(), auth.UserID(c), c.Param("public_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "location": loc})
}

func (h *Handler) generate(c *gin.Context) {
	var req docgen.ProjectConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": h.svc.Preview(req)})
}
