package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
	"github.com/cursorcraft/cursorcraft-backend/internal/documents"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the five project documents into a directory",
		Long: `Reads a YAML project file and writes PRD.md, CODE_STYLE.md, .cursorrules,
PROGRESS.md and README.md into the output directory.`,
		RunE: runRender,
	}
	cmd.Flags().String("config", "", "project YAML file (required)")
	cmd.Flags().String("out", ".", "output directory")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	outDir, _ := cmd.Flags().GetString("out")

	cfg, err := loadProjectFile(cfgPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	set := docgen.GenerateAll(cfg)
	for _, t := range documents.AllTypes() {
		path := filepath.Join(outDir, t.FileName())
		if err := os.WriteFile(path, []byte(t.Content(set)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}
