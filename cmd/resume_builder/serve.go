package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveResumeFile string
	serveNoLimit    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start an HTTP server that exposes the resume model, live preview, generation and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveResumeFile, "resume", "r", "", "Resume JSON file to start from instead of the placeholder")
	serveCmd.Flags().BoolVar(&serveNoLimit, "no-rate-limit", false, "Disable rate limiting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if servePort != 0 {
		settings.Port = servePort
	}

	store := session.NewStore()
	if serveResumeFile != "" {
		data, err := loadResumeFile(serveResumeFile)
		if err != nil {
			return err
		}
		if _, err := store.Update(func(types.ResumeData) (types.ResumeData, error) { return data, nil }); err != nil {
			return err
		}
	}

	// A missing key is reported per request so the rest of the app still works.
	var client llm.Client
	if settings.APIKey != "" {
		client, err = llm.NewClient(commandContext(cmd), llm.DefaultConfig().WithModel(settings.Model), settings.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	} else {
		log.Printf("[assist] %s", llm.MissingKeyMessage)
	}

	rl := ratelimit.LoadConfig()
	if serveNoLimit {
		rl.Enabled = false
	}

	srv, err := server.New(server.Config{
		Port:          settings.Port,
		Store:         store,
		Assist:        assist.NewService(client),
		Exporter:      export.NewExporter(newSurface(settings.ChromePath, time.Duration(settings.PrintSettle))),
		RateLimit:     rl,
		ExportTimeout: time.Duration(settings.ExportTimeout),
		Verbose:       settings.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// newSurface builds the Chrome print surface used by serve and export.
var newSurface = func(execPath string, settle time.Duration) export.PrintSurface {
	surface := export.NewChromeSurface(execPath)
	if settle > 0 {
		surface.SettleDelay = settle
	}
	return surface
}

// commandContext returns the command's context, or Background when run
// outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
