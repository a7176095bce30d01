package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema creates the projects table when missing. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
    id          BIGSERIAL PRIMARY KEY,
    public_id   TEXT NOT NULL UNIQUE,
    owner_id    TEXT NOT NULL,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    platform    TEXT NOT NULL DEFAULT '',
    framework   TEXT NOT NULL DEFAULT '',
    packages    TEXT[] NOT NULL DEFAULT '{}',
    template    TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at  TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS projects_owner_live_idx ON projects (owner_id, created_at DESC) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS projects_deleted_idx ON projects (deleted_at) WHERE deleted_at IS NOT NULL;
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
