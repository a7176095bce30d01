package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/cursorcraft/cursorcraft-backend/internal/documents"
	"github.com/cursorcraft/cursorcraft-backend/internal/export"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/repository"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("cache down")
}
func (failingCache) Put(context.Context, string, map[string]string) error {
	return errors.New("cache down")
}
func (failingCache) Delete(context.Context, string, ...string) error {
	return errors.New("cache down")
}

type recordingPublisher struct {
	key  string
	body []byte
}

func (r *recordingPublisher) Publish(_ context.Context, key string, body []byte) (string, error) {
	r.key, r.body = key, body
	return "s3://bucket/" + key, nil
}

func acmeConfig() docgen.ProjectConfig {
	return docgen.ProjectConfig{
		Name:             "  Acme Shop ",
		Description:      "Online store",
		Platform:         "Web",
		Framework:        "Next.js",
		SelectedPackages: []string{"Tailwind CSS", " ", "Zod"},
	}
}

func newService(t *testing.T) (*ProjectService, *documents.MemoryCache, *recordingPublisher) {
	t.Helper()
	cache := documents.NewMemoryCache(0)
	pub := &recordingPublisher{}
	svc := NewProjectService(Deps{
		Store:        repository.NewMemoryStore(),
		Cache:        cache,
		Publisher:    pub,
		ExportPrefix: "exports",
	})
	return svc, cache, pub
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, cache, _ := newService(t)

	p, set, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)
	assert.Equal(t, "Acme Shop", p.Name)
	assert.Equal(t, docgen.PlatformWeb, p.Platform)
	assert.Equal(t, []string{"Tailwind CSS", "Zod"}, p.Packages)
	assert.Equal(t, docgen.GenerateAll(p.Config()), set)

	content, ok, err := cache.Get(ctx, "u1", documents.CacheKey(p.PublicID, "Acme Shop", documents.TypePRD))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, set.PRD, content)
}

func TestCreate_Invalid(t *testing.T) {
	svc, _, _ := newService(t)

	_, _, err := svc.Create(context.Background(), "u1", docgen.ProjectConfig{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, _, err = svc.Create(context.Background(), "u1", docgen.ProjectConfig{Name: "x", Platform: "tv"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, cache, _ := newService(t)

	p, _, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	name := "Acme Market"
	fw := "Vue"
	updated, set, err := svc.Update(ctx, "u1", p.PublicID, domain.Patch{Name: &name, Framework: &fw})
	require.NoError(t, err)
	assert.Equal(t, "Acme Market", updated.Name)
	assert.Equal(t, "Online store", updated.Description, "unpatched fields are kept")
	assert.Contains(t, set.CodeStyle, "Vue")

	_, ok, _ := cache.Get(ctx, "u1", documents.CacheKey(p.PublicID, "Acme Shop", documents.TypePRD))
	assert.False(t, ok, "old name evicted")
	_, ok, _ = cache.Get(ctx, "u1", documents.CacheKey(p.PublicID, "Acme Market", documents.TypePRD))
	assert.True(t, ok)

	empty := ""
	_, _, err = svc.Update(ctx, "u1", p.PublicID, domain.Patch{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, _, err = svc.Update(ctx, "u2", p.PublicID, domain.Patch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, cache, _ := newService(t)

	p, _, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", p.PublicID))
	assert.Equal(t, 0, cache.Len())

	_, err = svc.Get(ctx, "u1", p.PublicID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "u1", p.PublicID), domain.ErrNotFound)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDocument(t *testing.T) {
	ctx := context.Background()
	svc, cache, _ := newService(t)

	p, set, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	t.Run("cache hit", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, "u1", map[string]string{documents.CacheKey(p.PublicID, "Acme Shop", documents.TypeReadme): "cached"}))
		_, content, err := svc.Document(ctx, "u1", p.PublicID, documents.TypeReadme)
		require.NoError(t, err)
		assert.Equal(t, "cached", content)
	})

	t.Run("cache miss regenerates", func(t *testing.T) {
		require.NoError(t, cache.Delete(ctx, "u1", documents.KeysFor(p.PublicID, "Acme Shop")...))
		_, content, err := svc.Document(ctx, "u1", p.PublicID, documents.TypeCursorRules)
		require.NoError(t, err)
		assert.Equal(t, set.CursorRules, content)

		_, ok, _ := cache.Get(ctx, "u1", documents.CacheKey(p.PublicID, "Acme Shop", documents.TypeProgressTracker))
		assert.True(t, ok, "whole set re-cached")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, _, err := svc.Document(ctx, "u1", p.PublicID, documents.Type("slides"))
		assert.ErrorIs(t, err, documents.ErrUnknownType)
	})
}

func TestDocument_SameNameProjects(t *testing.T) {
	ctx := context.Background()
	svc, cache, _ := newService(t)

	reactCfg := docgen.ProjectConfig{Name: "Acme", Platform: docgen.PlatformWeb, Framework: "React"}
	vueCfg := docgen.ProjectConfig{Name: "Acme", Platform: docgen.PlatformWeb, Framework: "Vue.js"}

	a, _, err := svc.Create(ctx, "u1", reactCfg)
	require.NoError(t, err)
	b, _, err := svc.Create(ctx, "u1", vueCfg)
	require.NoError(t, err)

	_, want, err := svc.Documents(ctx, "u1", a.PublicID)
	require.NoError(t, err)
	_, got, err := svc.Document(ctx, "u1", a.PublicID, documents.TypeCodeStyle)
	require.NoError(t, err)
	assert.Equal(t, want.CodeStyle, got)
	assert.Contains(t, got, "React")
	assert.NotContains(t, got, "Vue.js Specific Guidelines")

	require.NoError(t, svc.Delete(ctx, "u1", b.PublicID))
	_, ok, _ := cache.Get(ctx, "u1", documents.CacheKey(a.PublicID, "Acme", documents.TypeCursorRules))
	assert.True(t, ok, "deleting a same-name project keeps the other's entries")
	_, got, err = svc.Document(ctx, "u1", a.PublicID, documents.TypeCursorRules)
	require.NoError(t, err)
	assert.Equal(t, want.CursorRules, got)
}

func TestCacheFailuresDoNotFailRequests(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(Deps{Store: repository.NewMemoryStore(), Cache: failingCache{}})

	p, set, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	_, content, err := svc.Document(ctx, "u1", p.PublicID, documents.TypePRD)
	require.NoError(t, err)
	assert.Equal(t, set.PRD, content)

	require.NoError(t, svc.Delete(ctx, "u1", p.PublicID))
}

func TestDocumentsAndPreview(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	p, set, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	_, got, err := svc.Documents(ctx, "u1", p.PublicID)
	require.NoError(t, err)
	assert.Equal(t, set, got)

	assert.Equal(t, docgen.GenerateAll(docgen.ProjectConfig{}), svc.Preview(docgen.ProjectConfig{}))
}

func TestArchiveAndExport(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newService(t)

	p, _, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	_, b, err := svc.Archive(ctx, "u1", p.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(b[:2]))

	loc, err := svc.Export(ctx, "u1", p.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "exports/u1/"+p.PublicID+"/acme-shop.zip", pub.key)
	assert.Equal(t, "s3://bucket/"+pub.key, loc)
	assert.Equal(t, b, pub.body)

	_, err = svc.Export(ctx, "u2", p.PublicID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportDisabled(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(Deps{Store: repository.NewMemoryStore()})

	p, _, err := svc.Create(ctx, "u1", acmeConfig())
	require.NoError(t, err)

	_, err = svc.Export(ctx, "u1", p.PublicID)
	assert.ErrorIs(t, err, export.ErrDisabled)
}
