package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cursorcraft/cursorcraft-backend/internal/archive"
	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/cursorcraft/cursorcraft-backend/internal/documents"
	"github.com/cursorcraft/cursorcraft-backend/internal/export"
	"github.com/cursorcraft/cursorcraft-backend/internal/logging"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/repository"
)

// Deps are the collaborators of ProjectService. Cache and Publisher may be
// nil: documents are then cached in memory and export is disabled.
type Deps struct {
	Store        repository.Store
	Cache        documents.Cache
	Publisher    export.Publisher
	ExportPrefix string
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store        repository.Store
	cache        documents.Cache
	publisher    export.Publisher
	exportPrefix string
}

// NewProjectService creates a new project service
func NewProjectService(d Deps) *ProjectService {
	s := &ProjectService{
		store:        d.Store,
		cache:        d.Cache,
		publisher:    d.Publisher,
		exportPrefix: d.ExportPrefix,
	}
	if s.cache == nil {
		s.cache = documents.NewMemoryCache(0)
	}
	if s.publisher == nil {
		s.publisher = export.NoopPublisher{}
	}
	return s
}

func normalize(cfg docgen.ProjectConfig) docgen.ProjectConfig {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Framework = strings.TrimSpace(cfg.Framework)
	cfg.Platform = docgen.Platform(strings.ToLower(strings.TrimSpace(string(cfg.Platform))))
	pkgs := make([]string, 0, len(cfg.SelectedPackages))
	for _, p := range cfg.SelectedPackages {
		if p = strings.TrimSpace(p); p != "" {
			pkgs = append(pkgs, p)
		}
	}
	cfg.SelectedPackages = pkgs
	return cfg
}

// Create validates and stores a project, then renders and caches its documents.
func (s *ProjectService) Create(ctx context.Context, ownerID string, cfg docgen.ProjectConfig) (*domain.Project, docgen.GeneratedDocumentSet, error) {
	cfg = normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, docgen.GeneratedDocumentSet{}, err
	}

	p, err := s.store.Create(ctx, domain.NewProject(ownerID, cfg))
	if err != nil {
		return nil, docgen.GeneratedDocumentSet{}, err
	}

	set := docgen.GenerateAll(p.Config())
	s.cacheSet(ctx, p, set)

	logging.FromContext(ctx).Info("project created",
		zap.String("project_id", p.PublicID),
		zap.String("framework_family", docgen.ClassifyFramework(p.Framework).String()),
	)
	return p, set, nil
}

// List returns all projects for a user
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return s.store.List(ctx, ownerID)
}

func (s *ProjectService) Get(ctx context.Context, ownerID, publicID string) (*domain.Project, error) {
	return s.store.Get(ctx, ownerID, publicID)
}

// Update applies a partial update and re-renders the documents. Cached
// documents under the old name are evicted when the name changes.
func (s *ProjectService) Update(ctx context.Context, ownerID, publicID string, patch domain.Patch) (*domain.Project, docgen.GeneratedDocumentSet, error) {
	cur, err := s.store.Get(ctx, ownerID, publicID)
	if err != nil {
		return nil, docgen.GeneratedDocumentSet{}, err
	}

	cfg := normalize(patch.Apply(cur.Config()))
	if err := cfg.Validate(); err != nil {
		return nil, docgen.GeneratedDocumentSet{}, err
	}

	next := domain.NewProject(ownerID, cfg)
	next.PublicID = cur.PublicID
	updated, err := s.store.Update(ctx, next)
	if err != nil {
		return nil, docgen.GeneratedDocumentSet{}, err
	}

	if cur.Name != updated.Name {
		s.evict(ctx, ownerID, cur.PublicID, cur.Name)
	}
	set := docgen.GenerateAll(updated.Config())
	s.cacheSet(ctx, updated, set)
	return updated, set, nil
}

// Delete soft-deletes a project and drops its cached documents.
func (s *ProjectService) Delete(ctx context.Context, ownerID, publicID string) error {
	p, err := s.store.Get(ctx, ownerID, publicID)
	if err != nil {
		return err
	}
	ok, err := s.store.SoftDelete(ctx, ownerID, publicID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	s.evict(ctx, ownerID, p.PublicID, p.Name)
	return nil
}

// Documents regenerates the full document set from the stored fields.
func (s *ProjectService) Documents(ctx context.Context, ownerID, publicID string) (*domain.Project, docgen.GeneratedDocumentSet, error) {
	p, err := s.store.Get(ctx, ownerID, publicID)
	if err != nil {
		return nil, docgen.GeneratedDocumentSet{}, err
	}
	return p, docgen.GenerateAll(p.Config()), nil
}

// Document returns one document, from the cache when present. A miss
// regenerates and re-caches the whole set.
func (s *ProjectService) Document(ctx context.Context, ownerID, publicID string, t documents.Type) (*domain.Project, string, error) {
	if _, err := documents.ParseType(string(t)); err != nil {
		return nil, "", err
	}

	p, err := s.store.Get(ctx, ownerID, publicID)
	if err != nil {
		return nil, "", err
	}

	content, ok, err := s.cache.Get(ctx, ownerID, documents.CacheKey(p.PublicID, p.Name, t))
	if err != nil {
		logging.FromContext(ctx).Warn("document cache read failed", zap.Error(err))
	}
	if ok {
		return p, content, nil
	}

	set := docgen.GenerateAll(p.Config())
	s.cacheSet(ctx, p, set)
	return p, t.Content(set), nil
}

// Preview renders a configuration without persisting it.
func (s *ProjectService) Preview(cfg docgen.ProjectConfig) docgen.GeneratedDocumentSet {
	return docgen.GenerateAll(cfg)
}

// Archive builds the project's zip.
func (s *ProjectService) Archive(ctx context.Context, ownerID, publicID string) (*domain.Project, []byte, error) {
	p, set, err := s.Documents(ctx, ownerID, publicID)
	if err != nil {
		return nil, nil, err
	}
	b, err := archive.Build(p.Config(), set, p.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("build archive: %w", err)
	}
	return p, b, nil
}

// Export uploads the project's zip and returns its location.
func (s *ProjectService) Export(ctx context.Context, ownerID, publicID string) (string, error) {
	p, b, err := s.Archive(ctx, ownerID, publicID)
	if err != nil {
		return "", err
	}

	key := export.ObjectKey(s.exportPrefix, ownerID, p.PublicID, archive.FileName(p.Name))
	loc, err := s.publisher.Publish(ctx, key, b)
	if err != nil {
		if !errors.Is(err, export.ErrDisabled) {
			logging.FromContext(ctx).Error("export failed", zap.String("project_id", p.PublicID), zap.Error(err))
		}
		return "", err
	}
	return loc, nil
}

func (s *ProjectService) cacheSet(ctx context.Context, p *domain.Project, set docgen.GeneratedDocumentSet) {
	if err := s.cache.Put(ctx, p.OwnerID, documents.Entries(p.PublicID, p.Name, set)); err != nil {
		logging.FromContext(ctx).Warn("document cache write failed",
			zap.String("project_id", p.PublicID), zap.Error(err))
	}
}

func (s *ProjectService) evict(ctx context.Context, ownerID, publicID, name string) {
	if err := s.cache.Delete(ctx, ownerID, documents.KeysFor(publicID, name)...); err != nil {
		logging.FromContext(ctx).Warn("document cache evict failed", zap.Error(err))
	}
}
