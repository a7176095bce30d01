package archive

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func projectInfo(cfg docgen.ProjectConfig, createdAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "%s\n\n", orDefault(cfg.Description, docgen.DescriptionPlaceholder+"."))
	b.WriteString("## Project Information\n\n")
	fmt.Fprintf(&b, "- Type: %s\n", orDefault(string(cfg.Platform), "N/A"))
	fmt.Fprintf(&b, "- Framework: %s\n", orDefault(cfg.Framework, "N/A"))
	fmt.Fprintf(&b, "- Created: %s", createdAt.Format("January 2, 2006"))
	return b.String()
}

type scripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build"`
	Start string `json:"start"`
	Lint  string `json:"lint"`
}

type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Description     string            `json:"description"`
	Scripts         scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func packageJSON(cfg docgen.ProjectConfig) ([]byte, error) {
	m := packageManifest{
		Name:        docgen.Slug(cfg.Name),
		Version:     "0.1.0",
		Private:     true,
		Description: orDefault(cfg.Description, "Generated project"),
		Scripts: scripts{
			Dev:   "next dev",
			Build: "next build",
			Start: "next start",
			Lint:  "next lint",
		},
		Dependencies: map[string]string{
			"next":      "^14.0.0",
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"typescript":       "^5.0.0",
			"@types/node":      "^20.0.0",
			"@types/react":     "^18.2.0",
			"@types/react-dom": "^18.2.0",
		},
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("package.json: %w", err)
	}
	return out, nil
}

func pageTSX(cfg docgen.ProjectConfig) string {
	return fmt.Sprintf(`export default function Home() {
  return (
    <main>
      <h1>%s</h1>
      <p>%s</p>
    </main>
  )
}`, cfg.Name, orDefault(cfg.Description, "Welcome to the project!"))
}

const layoutTSX = `export default function RootLayout({
  children,
}: {
  children: React.ReactNode
}) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  )
}`

const tsconfig = `{
  "compilerOptions": {
    "target": "es5",
    "lib": ["dom", "dom.iterable", "esnext"],
    "allowJs": true,
    "skipLibCheck": true,
    "strict": true,
    "forceConsistentCasingInFileNames": true,
    "noEmit": true,
    "esModuleInterop": true,
    "module": "esnext",
    "moduleResolution": "node",
    "resolveJsonModule": true,
    "isolatedModules": true,
    "jsx": "preserve",
    "incremental": true,
    "plugins": [
      {
        "name": "next"
      }
    ],
    "paths": {
      "@/*": ["./*"]
    }
  },
  "include": ["next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts"],
  "exclude": ["node_modules"]
}`
