package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cursorcraft/cursorcraft-backend/internal/archive"
	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Build the project zip from a YAML project file",
		RunE:  runArchive,
	}
	cmd.Flags().String("config", "", "project YAML file (required)")
	cmd.Flags().String("out", "", "output zip path (default: <slug>.zip)")
	cmd.Flags().String("created", "", "creation date written into the archive, YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runArchive(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	outPath, _ := cmd.Flags().GetString("out")
	createdStr, _ := cmd.Flags().GetString("created")

	cfg, err := loadProjectFile(cfgPath)
	if err != nil {
		return err
	}

	created := time.Now().UTC()
	if createdStr != "" {
		created, err = time.Parse(time.DateOnly, createdStr)
		if err != nil {
			return fmt.Errorf("invalid --created: %w", err)
		}
	}

	if outPath == "" {
		outPath = archive.FileName(cfg.Name)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := archive.Write(f, cfg, docgen.GenerateAll(cfg), created); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
	return nil
}
