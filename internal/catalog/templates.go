package catalog

import (
	"fmt"
	"strings"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

// TemplateKind is the gallery tab a starter template is listed under.
type TemplateKind string

const (
	KindAll TemplateKind = "all"
	KindWeb TemplateKind = "web"
	KindAPI TemplateKind = "api"
	KindCLI TemplateKind = "cli"
)

// Valid reports whether k is a gallery tab. The empty kind counts as KindAll.
func (k TemplateKind) Valid() bool {
	switch k {
	case "", KindAll, KindWeb, KindAPI, KindCLI:
		return true
	}
	return false
}

// Template is a starter template from the gallery. A project's template
// field holds either one of these ids or free text.
type Template struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        TemplateKind `json:"type"`
	Tags        []string     `json:"tags"`
}

// TemplatePreview is what the gallery shows for one template.
type TemplatePreview struct {
	Template      Template `json:"template"`
	Structure     string   `json:"structure"`
	Documentation string   `json:"documentation"`
}

// Templates lists the templates of a kind whose name, description or a tag
// contains query, case-insensitively. An empty kind or KindAll matches every
// template and an empty query matches everything.
func Templates(kind TemplateKind, query string) []Template {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []Template{}
	for _, t := range templates {
		if kind != "" && kind != KindAll && t.Type != kind {
			continue
		}
		if query != "" && !t.matches(query) {
			continue
		}
		out = append(out, t.clone())
	}
	return out
}

func (t Template) matches(query string) bool {
	if strings.Contains(strings.ToLower(t.Name), query) ||
		strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (t Template) clone() Template {
	t.Tags = append([]string(nil), t.Tags...)
	return t
}

// LookupTemplate returns the template with the given id.
func LookupTemplate(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Template{}, false
}

// PreviewTemplate renders the structure tree and documentation outline for
// the template with the given id.
func PreviewTemplate(id string) (TemplatePreview, bool) {
	t, ok := LookupTemplate(id)
	if !ok {
		return TemplatePreview{}, false
	}
	return TemplatePreview{
		Template:      t,
		Structure:     templateStructure(t),
		Documentation: templateDocumentation(t),
	}, true
}

func templateStructure(t Template) string {
	return t.Name + `/
├── README.md
├── package.json
├── tsconfig.json
├── app/
│   ├── layout.tsx
│   ├── page.tsx
│   └── ...
├── components/
│   └── ...
├── lib/
│   └── ...
└── public/
    └── ...
`
}

func templateDocumentation(t Template) string {
	var b strings.Builder
	b.WriteString("# Product Requirements Document (PRD)\n\n")
	b.WriteString(t.Description + "\n\n")
	b.WriteString("## Technologies\n")
	for _, tag := range t.Tags {
		b.WriteString("- " + tag + "\n")
	}
	b.WriteString("\n---\n\n# Code Style Guidelines\n\n")
	fmt.Fprintf(&b, "- Use best practices for %s\n", strings.Join(t.Tags, ", "))
	b.WriteString("\n---\n\n# Cursor AI Rules\n\n")
	fmt.Fprintf(&b, "- Use AI to assist with %s development.\n", t.Name)
	b.WriteString("\n---\n\n# Progress Tracker\n\n")
	b.WriteString("- Project setup\n- Feature development\n- Testing\n- Deployment\n")
	return b.String()
}

// Prompt placeholders used by the "view prompt" library.
const (
	PlaceholderName         = "[project_name]"
	PlaceholderDescription  = "[project_description]"
	PlaceholderPlatform     = "[platform]"
	PlaceholderFramework    = "[framework]"
	PlaceholderDependencies = "[dependencies]"
)

// Prompts renders the five documents with placeholder values in place of a
// real project, for browsing before a project exists.
func Prompts() docgen.GeneratedDocumentSet {
	return docgen.GenerateAll(docgen.ProjectConfig{
		Name:             PlaceholderName,
		Description:      PlaceholderDescription,
		Platform:         docgen.Platform(PlaceholderPlatform),
		Framework:        PlaceholderFramework,
		SelectedPackages: []string{PlaceholderDependencies},
	})
}
