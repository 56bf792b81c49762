package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as HTML and PDF",
	Long:  "Renders a resume JSON file and writes {Name}_Resume.html and {Name}_Resume.pdf to the output directory. PDF printing needs a local Chrome or Chromium.",
	RunE:  runExport,
}

var (
	exportInputFile string
	exportOutputDir string
	exportHTMLOnly  bool
	exportPDFOnly   bool
	exportStyle     styleFlags
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to resume JSON file (default: placeholder resume)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out-dir", "o", ".", "Directory to write exported files to")
	exportCmd.Flags().BoolVar(&exportHTMLOnly, "html-only", false, "Skip PDF export")
	exportCmd.Flags().BoolVar(&exportPDFOnly, "pdf-only", false, "Skip HTML export")
	exportCmd.MarkFlagsMutuallyExclusive("html-only", "pdf-only")
	exportStyle.register(exportCmd)

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := loadResumeFile(exportInputFile)
	if err != nil {
		return err
	}
	opts, err := exportStyle.options()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	exporter := export.NewExporter(newSurface(settings.ChromePath, time.Duration(settings.PrintSettle)))

	ctx, cancel := context.WithTimeout(commandContext(cmd), time.Duration(settings.ExportTimeout))
	defer cancel()

	// Each artifact is produced and written in its own goroutine.
	var artifacts [2]*export.Artifact
	g, gctx := errgroup.WithContext(ctx)
	if !exportPDFOnly {
		g.Go(func() error {
			artifact, err := exporter.HTML(data, opts)
			if err != nil {
				return fmt.Errorf("html export failed: %w", err)
			}
			artifacts[0] = &artifact
			return writeArtifact(exportOutputDir, artifact)
		})
	}
	if !exportHTMLOnly {
		g.Go(func() error {
			artifact, err := exporter.PDF(gctx, data, opts)
			if err != nil {
				return fmt.Errorf("pdf export failed: %w", err)
			}
			artifacts[1] = &artifact
			return writeArtifact(exportOutputDir, artifact)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	written := make([]export.Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if a != nil {
			written = append(written, *a)
		}
	}

	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintArtifacts(written)
	}
	for _, a := range written {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Join(exportOutputDir, a.FileName))
	}
	return nil
}

func writeArtifact(dir string, artifact export.Artifact) error {
	path := filepath.Join(dir, artifact.FileName)
	if err := os.WriteFile(path, artifact.Body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
