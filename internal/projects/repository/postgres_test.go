package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/domain"
)

var columns = []string{
	"public_id", "owner_id", "name", "description", "platform", "framework",
	"packages", "template", "created_at", "updated_at",
}

func setupPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(db), mock
}

func projectRow(id string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		id, "u1", "Acme", "Shop", "web", "Next.js",
		[]byte(`{"Tailwind CSS","Zod"}`), "", now, now,
	)
}

func TestPostgresStore_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("inserts and scans the stored row", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs(sqlmock.AnyArg(), "u1", "Acme", "Shop", "web", "Next.js", sqlmock.AnyArg(), "").
			WillReturnRows(projectRow("ccraft-12345-6789", now))

		p := domain.NewProject("u1", docgen.ProjectConfig{
			Name: "Acme", Description: "Shop", Platform: docgen.PlatformWeb,
			Framework: "Next.js", SelectedPackages: []string{"Tailwind CSS", "Zod"},
		})
		out, err := store.Create(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "ccraft-12345-6789", out.PublicID)
		assert.Equal(t, docgen.PlatformWeb, out.Platform)
		assert.Equal(t, []string{"Tailwind CSS", "Zod"}, out.Packages)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries on unique violation", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnRows(projectRow("ccraft-22222-3333", now))

		out, err := store.Create(ctx, &domain.Project{OwnerID: "u1", Name: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, "ccraft-22222-3333", out.PublicID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		for i := 0; i < maxIDAttempts; i++ {
			mock.ExpectQuery(`INSERT INTO projects`).
				WillReturnError(&pq.Error{Code: "23505"})
		}

		_, err := store.Create(ctx, &domain.Project{OwnerID: "u1", Name: "Acme"})
		assert.ErrorIs(t, err, domain.ErrIDExhausted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors are returned", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnError(errors.New("connection reset"))

		_, err := store.Create(ctx, &domain.Project{OwnerID: "u1", Name: "Acme"})
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("requires name and owner", func(t *testing.T) {
		store, _ := setupPostgresStore(t)
		_, err := store.Create(ctx, &domain.Project{OwnerID: "u1"})
		assert.Error(t, err)
		_, err = store.Create(ctx, &domain.Project{Name: "Acme"})
		assert.Error(t, err)
	})
}

func TestPostgresStore_List(t *testing.T) {
	store, mock := setupPostgresStore(t)
	now := time.Now()

	rows := projectRow("ccraft-11111-1111", now).
		AddRow("ccraft-22222-2222", "u1", "Other", "", "api", "", nil, "", now, now)
	mock.ExpectQuery(`SELECT .+ FROM projects\s+WHERE owner_id = \$1 AND deleted_at IS NULL`).
		WithArgs("u1").
		WillReturnRows(rows)

	out, err := store.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0].Name)
	assert.NotNil(t, out[1].Packages)
	assert.Empty(t, out[1].Packages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`SELECT .+ FROM projects`).
			WithArgs("u1", "ccraft-12345-6789").
			WillReturnRows(projectRow("ccraft-12345-6789", time.Now()))

		p, err := store.Get(ctx, "u1", "ccraft-12345-6789")
		require.NoError(t, err)
		assert.Equal(t, "Shop", p.Description)
	})

	t.Run("not found", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`SELECT .+ FROM projects`).
			WithArgs("u1", "missing").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Get(ctx, "u1", "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresStore_Update(t *testing.T) {
	ctx := context.Background()
	p := &domain.Project{PublicID: "ccraft-12345-6789", OwnerID: "u1", Name: "Acme", Packages: []string{}}

	t.Run("updates", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`UPDATE projects\s+SET name = \$3`).
			WithArgs("u1", "ccraft-12345-6789", "Acme", "", "", "", sqlmock.AnyArg(), "").
			WillReturnRows(projectRow("ccraft-12345-6789", time.Now()))

		out, err := store.Update(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "ccraft-12345-6789", out.PublicID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		store, mock := setupPostgresStore(t)
		mock.ExpectQuery(`UPDATE projects`).WillReturnError(sql.ErrNoRows)

		_, err := store.Update(ctx, p)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresStore_SoftDelete(t *testing.T) {
	store, mock := setupPostgresStore(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE projects\s+SET deleted_at = now\(\)`).
		WithArgs("u1", "ccraft-12345-6789").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE projects\s+SET deleted_at = now\(\)`).
		WithArgs("u1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := store.SoftDelete(ctx, "u1", "ccraft-12345-6789")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SoftDelete(ctx, "u1", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_PurgeDeleted(t *testing.T) {
	store, mock := setupPostgresStore(t)
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec(`DELETE FROM projects WHERE deleted_at IS NOT NULL AND deleted_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := store.PurgeDeleted(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
