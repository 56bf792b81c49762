package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume JSON file",
	Long:  "Checks a resume JSON file against the resume document schema.",
	RunE:  runValidate,
}

var validateJSONFile string

func init() {
	validateCmd.Flags().StringVarP(&validateJSONFile, "json", "j", "", "Path to resume JSON file (required)")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	err := schemas.ValidateResumeFile(validateJSONFile)

	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		if verbose {
			observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(nil)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSONFile)
		return nil
	case errors.As(err, &validationErr):
		if verbose {
			observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(validationErr)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n", validateJSONFile)
		return err
	default:
		return fmt.Errorf("failed to validate %s: %w", validateJSONFile, err)
	}
}
