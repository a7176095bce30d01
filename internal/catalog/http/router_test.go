package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/catalog"))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return rr, body
}

func TestListPlatforms(t *testing.T) {
	rr, body := get(t, newRouter(), "/catalog/platforms")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["platforms"], 4)
}

func TestListFrameworks(t *testing.T) {
	r := newRouter()

	rr, body := get(t, r, "/catalog/platforms/desktop/frameworks")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["frameworks"], 3)

	rr, body = get(t, r, "/catalog/platforms/tv/frameworks")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, body["ok"])
}

func TestListPackages(t *testing.T) {
	r := newRouter()

	rr, _ := get(t, r, "/catalog/packages")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, body := get(t, r, "/catalog/packages?platform=desktop&framework=qt")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, body["packages"])

	rr, body = get(t, r, "/catalog/packages?platform=web&framework=next")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, body["packages"])
}

func TestListTemplates(t *testing.T) {
	r := newRouter()

	rr, body := get(t, r, "/catalog/templates")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["templates"], 6)

	rr, body = get(t, r, "/catalog/templates?type=API")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["templates"], 2)

	rr, body = get(t, r, "/catalog/templates?type=web&q=blog")
	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, body["templates"], 1)
	first := body["templates"].([]any)[0].(map[string]any)
	assert.Equal(t, "nextjs-blog", first["id"])

	rr, body = get(t, r, "/catalog/templates?q=cobol")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, body["templates"])

	rr, body = get(t, r, "/catalog/templates?type=desktop")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, false, body["ok"])
}

func TestGetTemplate(t *testing.T) {
	r := newRouter()

	rr, body := get(t, r, "/catalog/templates/fastapi-backend")
	assert.Equal(t, http.StatusOK, rr.Code)
	tpl := body["template"].(map[string]any)
	assert.Equal(t, "FastAPI Backend", tpl["name"])
	assert.Contains(t, body["structure"], "FastAPI Backend/")
	assert.Contains(t, body["documentation"], "- postgresql")

	rr, _ = get(t, r, "/catalog/templates/rails-app")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListPrompts(t *testing.T) {
	rr, body := get(t, newRouter(), "/catalog/prompts")
	assert.Equal(t, http.StatusOK, rr.Code)
	docs := body["documents"].(map[string]any)
	for _, k := range []string{"prd", "codeStyle", "cursorRules", "progressTracker", "readme"} {
		assert.Contains(t, docs[k], "[project_name]", k)
	}
}
