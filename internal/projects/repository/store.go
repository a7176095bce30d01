package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
)

// Store persists projects. Every read and write is scoped to an owner and
// ignores soft-deleted rows, except PurgeDeleted.
type Store interface {
	// Create assigns a public id and timestamps and returns the stored project.
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	// List returns the owner's projects, newest first.
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Get(ctx context.Context, ownerID, publicID string) (*domain.Project, error)
	// Update overwrites the editable fields of p, matched by owner and public id.
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	// SoftDelete reports false when no live project matched.
	SoftDelete(ctx context.Context, ownerID, publicID string) (bool, error)
	// PurgeDeleted hard-deletes projects soft-deleted before the cutoff.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

const maxIDAttempts = 5

var (
	errNameRequired  = errors.New("name required")
	errOwnerRequired = errors.New("owner id required")
)
