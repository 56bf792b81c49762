package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"model": "gemini-2.5-pro",
		"print_settle": "2s",
		"export_timeout": 30000,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, Duration(2*time.Second), cfg.PrintSettle)
	assert.Equal(t, Duration(30*time.Second), cfg.ExportTimeout)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_BadDuration(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"print_settle": "soon"}`), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(data))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("PORT", "3000")
	t.Setenv("PRINT_SETTLE", "250ms")
	t.Setenv("EXPORT_TIMEOUT", "bogus")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")

	cfg := FromEnv()
	assert.Equal(t, "gemini-key", cfg.APIKey)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.PrintSettle)
	assert.Zero(t, cfg.ExportTimeout)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
}

func TestAPIKeyFromEnv_PrefersAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "primary")
	t.Setenv("GEMINI_API_KEY", "secondary")
	assert.Equal(t, "primary", APIKeyFromEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{Port: 8080, PrintSettle: Duration(time.Second)}},
		{name: "no api key is fine", cfg: Config{}},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "negative settle", cfg: Config{PrintSettle: -1}, wantErr: "print_settle"},
		{name: "negative timeout", cfg: Config{ExportTimeout: -1}, wantErr: "export_timeout"},
		{name: "missing chrome", cfg: Config{ChromePath: "/nonexistent/chrome"}, wantErr: "chrome executable not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:     "env-key",
		Model:      "gemini-2.5-flash",
		ChromePath: "/usr/bin/chromium",
		Port:       3000,
	}

	partial := Config{
		Model: "gemini-2.5-pro",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "gemini-2.5-pro", merged.Model)

	// Default values should fill in empty fields
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, "/usr/bin/chromium", merged.ChromePath)
	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, Duration(DefaultPrintSettle), merged.PrintSettle)
	assert.Equal(t, Duration(DefaultExportTimeout), merged.ExportTimeout)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 9000}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 9000, merged.Port)
	assert.Empty(t, merged.APIKey)
	assert.Equal(t, Duration(DefaultExportTimeout), merged.ExportTimeout)
}
