package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/cursorcraft/cursorcraft-backend/internal/api/http"
	"github.com/cursorcraft/cursorcraft-backend/internal/api/http/middleware"
	"github.com/cursorcraft/cursorcraft-backend/internal/api/http/routes"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Logger         *zap.Logger

	Auth     gin.HandlerFunc
	Projects *service.ProjectService
	Limiter  *middleware.RateLimiter

	StorePinger httpapi.Pinger
	CachePinger httpapi.Pinger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.StorePinger, dep.CachePinger)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Auth:     dep.Auth,
		Projects: dep.Projects,
		Limiter:  dep.Limiter,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-User-Id", "X-User-Email", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID, "Content-Disposition"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
