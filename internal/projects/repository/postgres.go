package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
)

// PostgresStore is the Store backed by the projects table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const projectColumns = `public_id, owner_id, name, description, platform, framework, packages, template, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var pkgs pq.StringArray
	if err := row.Scan(
		&p.PublicID, &p.OwnerID, &p.Name, &p.Description, &p.Platform,
		&p.Framework, &pkgs, &p.Template, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Packages = []string(pkgs)
	if p.Packages == nil {
		p.Packages = []string{}
	}
	return &p, nil
}

func (s *PostgresStore) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p.Name == "" {
		return nil, errNameRequired
	}
	if p.OwnerID == "" {
		return nil, errOwnerRequired
	}

	const q = `
INSERT INTO projects (public_id, owner_id, name, description, platform, framework, packages, template)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + projectColumns + `;
`
	for i := 0; i < maxIDAttempts; i++ {
		publicID, err := domain.NewPublicID(domain.PublicIDPrefix)
		if err != nil {
			return nil, err
		}

		out, err := scanProject(s.db.QueryRowContext(ctx, q,
			publicID, p.OwnerID, p.Name, p.Description, string(p.Platform),
			p.Framework, pq.Array(p.Packages), p.Template,
		))
		if err == nil {
			return out, nil
		}

		// unique violation on public_id → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	return nil, domain.ErrIDExhausted
}

func (s *PostgresStore) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE owner_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC;
`
	rows, err := s.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, ownerID, publicID string) (*domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE owner_id = $1 AND public_id = $2 AND deleted_at IS NULL;
`
	p, err := scanProject(s.db.QueryRowContext(ctx, q, ownerID, publicID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name = $3, description = $4, platform = $5, framework = $6, packages = $7, template = $8, updated_at = now()
WHERE owner_id = $1 AND public_id = $2 AND deleted_at IS NULL
RETURNING ` + projectColumns + `;
`
	out, err := scanProject(s.db.QueryRowContext(ctx, q,
		p.OwnerID, p.PublicID, p.Name, p.Description, string(p.Platform),
		p.Framework, pq.Array(p.Packages), p.Template,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) SoftDelete(ctx context.Context, ownerID, publicID string) (bool, error) {
	const q = `
UPDATE projects
SET deleted_at = now(), updated_at = now()
WHERE owner_id = $1 AND public_id = $2 AND deleted_at IS NULL;
`
	result, err := s.db.ExecContext(ctx, q, ownerID, publicID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (s *PostgresStore) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	const q = `DELETE FROM projects WHERE deleted_at IS NOT NULL AND deleted_at < $1;`
	result, err := s.db.ExecContext(ctx, q, before)
	if err != nil {
		return 0, fmt.Errorf("purge projects: %w", err)
	}
	return result.RowsAffected()
}

// Ping reports whether the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
