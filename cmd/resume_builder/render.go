package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to HTML",
	Long:  "Renders a resume JSON file with the selected template and styling. Writes a standalone HTML document, or only the preview fragment with --fragment.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderFragment   bool
	renderStyle      styleFlags
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume JSON file (default: placeholder resume)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "Write only the preview fragment")
	renderStyle.register(renderCmd)

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := loadResumeFile(renderInputFile)
	if err != nil {
		return err
	}
	opts, err := renderStyle.options()
	if err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintResume(&data)
		printer.PrintCustomization(&opts)
	}

	fragment, err := rendering.Render(data, opts)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	out := string(fragment)
	if !renderFragment {
		out, err = export.HTMLDocument(fragment, export.BaseName(export.FileName(data.PersonalDetails.FullName, "html")))
		if err != nil {
			return fmt.Errorf("failed to build document: %w", err)
		}
	}

	if renderOutputFile == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if dir := filepath.Dir(renderOutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutputFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %s resume\n", opts.TemplateID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOutputFile)
	return nil
}
