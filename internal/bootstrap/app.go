package bootstrap

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cursorcraft/cursorcraft-backend/config"
	httpapi "github.com/cursorcraft/cursorcraft-backend/internal/api/http"
	"github.com/cursorcraft/cursorcraft-backend/internal/auth"
	authmw "github.com/cursorcraft/cursorcraft-backend/internal/auth/middleware"
	"github.com/cursorcraft/cursorcraft-backend/internal/documents"
	"github.com/cursorcraft/cursorcraft-backend/internal/export"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/repository"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/service"
)

// App holds the constructed collaborators. Each backing service is chosen
// once here: the real client when configured, the in-memory variant otherwise.
type App struct {
	Store     repository.Store
	Cache     documents.Cache
	Publisher export.Publisher
	Projects  *service.ProjectService
	Auth      gin.HandlerFunc

	// Non-nil only for the real backends; used by health checks.
	StorePinger httpapi.Pinger
	CachePinger httpapi.Pinger

	db    *sql.DB
	redis *redis.Client
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{}

	if err := app.initStore(ctx, cfg, logger); err != nil {
		return nil, err
	}
	if err := app.initCache(ctx, cfg, logger); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initPublisher(ctx, cfg, logger); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initAuth(ctx, cfg, logger); err != nil {
		app.Close()
		return nil, err
	}

	app.Projects = service.NewProjectService(service.Deps{
		Store:        app.Store,
		Cache:        app.Cache,
		Publisher:    app.Publisher,
		ExportPrefix: cfg.Export.Prefix,
	})
	return app, nil
}

func (a *App) initStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if !cfg.Database.Enabled() {
		logger.Warn("DB_HOST not set, projects are kept in memory")
		a.Store = repository.NewMemoryStore()
		return nil
	}
	db, err := OpenDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	pg := repository.NewPostgresStore(db)
	a.db, a.Store, a.StorePinger = db, pg, pg
	return nil
}

func (a *App) initCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if !cfg.Redis.Enabled() {
		logger.Info("REDIS_ADDR not set, documents are cached in memory")
		a.Cache = documents.NewMemoryCache(cfg.Redis.DocumentTTL)
		return nil
	}
	client, err := OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	rc := documents.NewRedisCache(client, cfg.Redis.DocumentTTL)
	a.redis, a.Cache, a.CachePinger = client, rc, rc
	return nil
}

func (a *App) initPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if !cfg.Export.Enabled() {
		a.Publisher = export.NoopPublisher{}
		return nil
	}
	pub, err := export.NewS3PublisherFromEnv(ctx, cfg.Export.Bucket, cfg.Export.Region)
	if err != nil {
		return err
	}
	logger.Info("exports enabled", zap.String("bucket", cfg.Export.Bucket))
	a.Publisher = pub
	return nil
}

func (a *App) initAuth(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if !cfg.Firebase.Enabled() {
		if cfg.App.Environment == "production" {
			return errors.New("FIREBASE_CREDENTIALS_PATH is required in production")
		}
		logger.Warn("Firebase not configured, trusting X-User-Id header")
		a.Auth = auth.OptionalUser()
		return nil
	}
	client, err := auth.NewAuthClient(ctx, &cfg.Firebase)
	if err != nil {
		return err
	}
	logger.Info("firebase auth enabled", zap.String("project", cfg.Firebase.ProjectID))
	a.Auth = authmw.FirebaseAuthMiddleware(client)
	return nil
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
