package http

import (
	"net/http"
	"strings"

	"github.com/cursorcraft/cursorcraft-backend/internal/catalog"
	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/gin-gonic/gin"
)

// Register attaches the read-only catalog routes.
func Register(rg *gin.RouterGroup) {
	rg.GET("/platforms", listPlatforms)
	rg.GET("/platforms/:platform/frameworks", listFrameworks)
	rg.GET("/packages", listPackages)
	rg.GET("/templates", listTemplates)
	rg.GET("/templates/:id", getTemplate)
	rg.GET("/prompts", listPrompts)
}

func listPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "platforms": catalog.Platforms()})
}

func listFrameworks(c *gin.Context) {
	id := docgen.Platform(strings.ToLower(c.Param("platform")))
	if _, ok := catalog.LookupPlatform(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "platform not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "frameworks": catalog.FrameworksByPlatform(id)})
}

func listPackages(c *gin.Context) {
	platform := docgen.Platform(strings.ToLower(c.Query("platform")))
	if platform == docgen.PlatformNone {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "platform query parameter required"})
		return
	}

	pkgs := catalog.PackagesFor(platform, c.Query("framework"))
	if pkgs == nil {
		pkgs = []catalog.Package{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "packages": pkgs})
}

func listTemplates(c *gin.Context) {
	kind := catalog.TemplateKind(strings.ToLower(c.Query("type")))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "type must be one of all, web, api, cli"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "templates": catalog.Templates(kind, c.Query("q"))})
}

func getTemplate(c *gin.Context) {
	preview, ok := catalog.PreviewTemplate(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "template": preview.Template, "structure": preview.Structure, "documentation": preview.Documentation})
}

func listPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": catalog.Prompts()})
}
