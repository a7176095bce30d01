// Package archive packages a project skeleton and its generated documents
// into a zip file.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

// Entry is one file or directory of the archive. Directory paths end in "/".
type Entry struct {
	Path string
	Body []byte
}

func (e Entry) IsDir() bool { return strings.HasSuffix(e.Path, "/") }

// RootDir is the top-level folder name for a project.
func RootDir(name string) string {
	r := strings.NewReplacer("/", "-", "\\", "-")
	name = strings.TrimSpace(r.Replace(name))
	if name == "" || name == "." || name == ".." {
		return docgen.Slug("")
	}
	return name
}

// FileName is the download name of a project's archive.
func FileName(name string) string {
	return docgen.Slug(name) + ".zip"
}

// Entries lists the archive contents in write order.
func Entries(cfg docgen.ProjectConfig, docs docgen.GeneratedDocumentSet, createdAt time.Time) ([]Entry, error) {
	root := RootDir(cfg.Name) + "/"

	pkg, err := packageJSON(cfg)
	if err != nil {
		return nil, err
	}

	return []Entry{
		{Path: root + "README.md", Body: []byte(projectInfo(cfg, createdAt))},
		{Path: root + "package.json", Body: pkg},
		{Path: root + "tsconfig.json", Body: []byte(tsconfig)},
		{Path: root + "app/layout.tsx", Body: []byte(layoutTSX)},
		{Path: root + "app/page.tsx", Body: []byte(pageTSX(cfg))},
		{Path: root + "components/"},
		{Path: root + "lib/"},
		{Path: root + "public/"},
		{Path: root + "docs/PRD.md", Body: []byte(docs.PRD)},
		{Path: root + "docs/CODE_STYLE.md", Body: []byte(docs.CodeStyle)},
		{Path: root + "docs/PROGRESS.md", Body: []byte(docs.ProgressTracker)},
		{Path: root + "docs/README.md", Body: []byte(docs.Readme)},
		{Path: root + ".cursorrules", Body: []byte(docs.CursorRules)},
	}, nil
}

// Write streams the archive to w. Every entry carries createdAt as its
// modification time so equal inputs give byte-identical archives.
func Write(w io.Writer, cfg docgen.ProjectConfig, docs docgen.GeneratedDocumentSet, createdAt time.Time) error {
	entries, err := Entries(cfg, docs, createdAt)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.Path, Modified: createdAt.UTC()}
		if e.IsDir() {
			hdr.SetMode(0o755 | fs.ModeDir)
		} else {
			hdr.Method = zip.Deflate
			hdr.SetMode(0o644)
		}

		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("zip entry %s: %w", e.Path, err)
		}
		if e.IsDir() {
			continue
		}
		if _, err := fw.Write(e.Body); err != nil {
			return fmt.Errorf("zip entry %s: %w", e.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}

// Build returns the archive as bytes.
func Build(cfg docgen.ProjectConfig, docs docgen.GeneratedDocumentSet, createdAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cfg, docs, createdAt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
