package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

// loadSettings merges the config file over the environment and applies defaults.
func loadSettings() (config.Config, error) {
	env := config.FromEnv()

	file := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		file = loaded
	}

	merged := file.MergeWithDefaults(env)
	merged.Verbose = merged.Verbose || verbose
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadResumeFile reads a resume document, checks it against the schema and
// assigns missing item IDs. An empty path yields the placeholder resume.
func loadResumeFile(path string) (types.ResumeData, error) {
	if path == "" {
		return types.InitialResumeData(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(content); err != nil {
		return types.ResumeData{}, fmt.Errorf("invalid resume file %s: %w", path, err)
	}

	var doc types.ResumeData
	if err := json.Unmarshal(content, &doc); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return resume.FromDocument(doc)
}

// styleFlags selects the customization for render and export.
type styleFlags struct {
	template   string
	scheme     string
	fontFamily string
	fontSize   string
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template: classic, modern or creative")
	cmd.Flags().StringVar(&f.scheme, "scheme", "", "Color scheme key (default, charcoal, ocean, emerald, crimson)")
	cmd.Flags().StringVar(&f.fontFamily, "font-family", "", "Font family class (font-sans, font-serif, font-mono)")
	cmd.Flags().StringVar(&f.fontSize, "font-size", "", "Font size class (text-sm, text-base, text-lg)")
}

// options applies the flags to the startup customization.
func (f *styleFlags) options() (types.CustomizationOptions, error) {
	var patch resume.CustomizationPatch
	if f.template != "" {
		id := types.TemplateID(f.template)
		patch.TemplateID = &id
	}
	if f.scheme != "" {
		scheme, ok := types.ColorSchemes()[f.scheme]
		if !ok {
			return types.CustomizationOptions{}, fmt.Errorf("unknown color scheme %q", f.scheme)
		}
		patch.ColorScheme = &scheme
	}
	if f.fontFamily != "" || f.fontSize != "" {
		patch.FontOptions = &resume.FontOptionsPatch{}
		if f.fontFamily != "" {
			patch.FontOptions.FontFamily = &f.fontFamily
		}
		if f.fontSize != "" {
			patch.FontOptions.FontSize = &f.fontSize
		}
	}

	opts := resume.UpdateCustomization(types.InitialCustomizationOptions(), patch)
	if err := opts.Validate(); err != nil {
		return types.CustomizationOptions{}, fmt.Errorf("invalid customization: %w", err)
	}
	return opts, nil
}
