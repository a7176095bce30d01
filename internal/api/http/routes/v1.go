package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cursorcraft/cursorcraft-backend/internal/api/http/middleware"
	"github.com/cursorcraft/cursorcraft-backend/internal/auth"
	authhttp "github.com/cursorcraft/cursorcraft-backend/internal/auth/http"
	cataloghttp "github.com/cursorcraft/cursorcraft-backend/internal/catalog/http"
	projectshttp "github.com/cursorcraft/cursorcraft-backend/internal/projects/http"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/service"
)

type V1Deps struct {
	// Auth identifies the caller; either the Firebase middleware or OptionalUser.
	Auth     gin.HandlerFunc
	Projects *service.ProjectService
	Limiter  *middleware.RateLimiter
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	cataloghttp.Register(api.Group("/catalog"))

	secured := api.Group("", dep.Auth)
	authhttp.Register(secured.Group("/auth"))

	var limit gin.HandlerFunc
	if dep.Limiter != nil {
		limit = dep.Limiter.Middleware(auth.UserID)
	}

	projectsHandler := projectshttp.New(dep.Projects, limit)
	projectsHandler.Register(secured.Group("/projects"))
	projectsHandler.RegisterGenerate(secured)
}
