package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "worker",
		Short:         "Offline document generation and maintenance",
		Long:          "worker renders project documents and archives from a YAML project file and runs maintenance jobs against the configured database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newArchiveCmd(), newPurgeCmd())
	return root
}

// loadProjectFile reads a YAML project description, e.g.
//
//	name: Acme Shop
//	platform: web
//	framework: Next.js
//	selectedPackages: [Tailwind CSS, Zod]
func loadProjectFile(path string) (docgen.ProjectConfig, error) {
	var cfg docgen.ProjectConfig

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read project file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse project file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
