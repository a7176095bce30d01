// Package documents names the generated documents and caches their content.
package documents

import (
	"errors"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

var ErrUnknownType = errors.New("unknown document type")

// Type identifies one of the generated documents. The string value is the
// URL segment used by the HTTP API.
type Type string

const (
	TypePRD             Type = "prd"
	TypeCodeStyle       Type = "code-style"
	TypeCursorRules     Type = "cursor-rules"
	TypeProgressTracker Type = "progress"
	TypeReadme          Type = "readme"
)

type typeInfo struct {
	title    string
	suffix   string
	fileName string
	content  func(docgen.GeneratedDocumentSet) string
}

var types = map[Type]typeInfo{
	TypePRD: {
		title: "Product Requirements Document", suffix: "_prd", fileName: "PRD.md",
		content: func(s docgen.GeneratedDocumentSet) string { return s.PRD },
	},
	TypeCodeStyle: {
		title: "Code Style Guidelines", suffix: "_code_style", fileName: "CODE_STYLE.md",
		content: func(s docgen.GeneratedDocumentSet) string { return s.CodeStyle },
	},
	TypeCursorRules: {
		title: "Cursor AI Rules", suffix: "_cursor_rules", fileName: ".cursorrules",
		content: func(s docgen.GeneratedDocumentSet) string { return s.CursorRules },
	},
	TypeProgressTracker: {
		title: "Progress Tracker", suffix: "_progress_tracker", fileName: "PROGRESS.md",
		content: func(s docgen.GeneratedDocumentSet) string { return s.ProgressTracker },
	},
	TypeReadme: {
		title: "README", suffix: "_readme", fileName: "README.md",
		content: func(s docgen.GeneratedDocumentSet) string { return s.Readme },
	},
}

// AllTypes lists every document type in display order.
func AllTypes() []Type {
	return []Type{TypePRD, TypeCodeStyle, TypeCursorRules, TypeProgressTracker, TypeReadme}
}

// ParseType validates a URL segment.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := types[t]; !ok {
		return "", ErrUnknownType
	}
	return t, nil
}

func (t Type) Title() string    { return types[t].title }
func (t Type) Suffix() string   { return types[t].suffix }
func (t Type) FileName() string { return types[t].fileName }

// Content picks this type's document out of a generated set.
func (t Type) Content(set docgen.GeneratedDocumentSet) string {
	info, ok := types[t]
	if !ok {
		return ""
	}
	return info.content(set)
}

// Key is the storage name of a project's document: project name + suffix.
func Key(projectName string, t Type) string {
	return projectName + t.Suffix()
}

// CacheKey scopes Key to one project, so projects sharing a name never
// share cache entries.
func CacheKey(publicID, projectName string, t Type) string {
	return publicID + ":" + Key(projectName, t)
}
