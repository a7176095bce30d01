package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectYAML = `name: Acme Shop
description: Online store
platform: web
framework: Next.js
selectedPackages:
  - Tailwind CSS
  - Zod
`

func writeProject(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoadProjectFile(t *testing.T) {
	cfg, err := loadProjectFile(writeProject(t, projectYAML))
	require.NoError(t, err)
	assert.Equal(t, "Acme Shop", cfg.Name)
	assert.Equal(t, []string{"Tailwind CSS", "Zod"}, cfg.SelectedPackages)

	_, err = loadProjectFile(writeProject(t, "name: [oops"))
	assert.Error(t, err)

	_, err = loadProjectFile(writeProject(t, "description: no name\n"))
	assert.ErrorContains(t, err, "name required")

	_, err = loadProjectFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out := t.TempDir()
	stdout, err := execute("render", "--config", writeProject(t, projectYAML), "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote")

	for _, name := range []string{"PRD.md", "CODE_STYLE.md", ".cursorrules", "PROGRESS.md", "README.md"} {
		b, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, b)
	}

	readme, _ := os.ReadFile(filepath.Join(out, "README.md"))
	assert.Contains(t, string(readme), "cd acme-shop")
}

func TestRenderRequiresConfig(t *testing.T) {
	_, err := execute("render")
	assert.Error(t, err)
}

func TestArchiveCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "dist", "acme.zip")
	_, err := execute("archive", "--config", writeProject(t, projectYAML), "--out", outPath, "--created", "2026-03-14")
	require.NoError(t, err)

	zr, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Acme Shop/docs/PRD.md")
	assert.Contains(t, names, "Acme Shop/.cursorrules")

	_, err = execute("archive", "--config", writeProject(t, projectYAML), "--out", outPath, "--created", "14/03/2026")
	assert.ErrorContains(t, err, "invalid --created")
}

func TestPurgeRequiresDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	_, err := execute("purge")
	assert.ErrorContains(t, err, "DB_HOST")
}
