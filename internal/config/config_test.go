package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig tests default configuration values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	c := NewConfig()

	if c.OutputDir != DefaultOutputDir {
		t.Errorf("expected output dir %q, got %q", DefaultOutputDir, c.OutputDir)
	}
	if c.Product != DefaultProduct {
		t.Errorf("expected product %q, got %q", DefaultProduct, c.Product)
	}
	if c.BatchSize != DefaultBatchSize {
		t.Errorf("expected batch size %d, got %d", DefaultBatchSize, c.BatchSize)
	}
	if c.JSONExport || c.HTMLExport {
		t.Error("expected markdown to be the default format")
	}
	if c.Verbose {
		t.Error("expected verbose to default to false")
	}
}

// TestConfigFormat tests format selection.
func TestConfigFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{
			name: "defaults to markdown",
			mod:  func(*Config) {},
			want: FormatMarkdown,
		},
		{
			name: "json when JSONExport is set",
			mod:  func(c *Config) { c.JSONExport = true },
			want: FormatJSON,
		},
		{
			name: "html when HTMLExport is set",
			mod:  func(c *Config) { c.HTMLExport = true },
			want: FormatHTML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConfig()
			tt.mod(c)
			if got := c.Format(); got != tt.want {
				t.Errorf("expected format %q, got %q", tt.want, got)
			}
		})
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		c := NewConfig()
		c.InputFiles = []string{"snapshot.json"}
		return c
	}

	tests := []struct {
		name    string
		mod     func(*Config)
		wantErr error
	}{
		{
			name:    "valid configuration passes",
			mod:     func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "missing input files",
			mod:     func(c *Config) { c.InputFiles = nil },
			wantErr: ErrNoInput,
		},
		{
			name: "conflicting formats",
			mod: func(c *Config) {
				c.JSONExport = true
				c.HTMLExport = true
			},
			wantErr: ErrConflictingFormats,
		},
		{
			name:    "zero batch size",
			mod:     func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "negative batch size",
			mod:     func(c *Config) { c.BatchSize = -1 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "empty product",
			mod:     func(c *Config) { c.Product = "" },
			wantErr: ErrEmptyProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tt.mod(c)

			err := c.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestXDGDirs tests XDG directory path construction.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if dir := XDGDataDir(); !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected data dir to end with %q, got %q", AppName, dir)
	}
	if dir := XDGConfigDir(); !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected config dir to end with %q, got %q", AppName, dir)
	}
}

// TestLoadConfigFile tests YAML configuration loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads valid configuration", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := []byte(`
defaults:
  outputDir: /var/reports
  product: truthcast
formats:
  html:
    outputDir: /var/www/reports
  json:
    archive: false
`)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cf.Defaults.OutputDir != "/var/reports" {
			t.Errorf("expected default output dir /var/reports, got %q", cf.Defaults.OutputDir)
		}
		if cf.Formats["html"].OutputDir != "/var/www/reports" {
			t.Errorf("unexpected html output dir %q", cf.Formats["html"].OutputDir)
		}
		if a := cf.Formats["json"].Archive; a == nil || *a {
			t.Error("expected json archive override to be false")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(`{invalid yaml`), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("empty file initializes Formats map", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cf.Formats == nil {
			t.Error("expected Formats map to be initialized")
		}
	})
}

// TestFindConfigFile tests configuration file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("defaults: {}"), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

// TestGetFormatConfig tests merging of defaults and format overrides.
func TestGetFormatConfig(t *testing.T) {
	t.Parallel()

	archiveOff := false
	cf := &File{
		Defaults: FormatConfig{
			OutputDir: "/var/reports",
			Product:   "truthcast",
		},
		Formats: map[string]FormatConfig{
			"html": {
				OutputDir: "/var/www/reports",
			},
			"json": {
				Archive: &archiveOff,
			},
		},
	}

	t.Run("format override wins", func(t *testing.T) {
		t.Parallel()

		got := cf.GetFormatConfig("html")
		if got.OutputDir != "/var/www/reports" {
			t.Errorf("expected override output dir, got %q", got.OutputDir)
		}
		if got.Product != "truthcast" {
			t.Errorf("expected default product, got %q", got.Product)
		}
	})

	t.Run("missing format falls back to defaults", func(t *testing.T) {
		t.Parallel()

		got := cf.GetFormatConfig("markdown")
		if got.OutputDir != "/var/reports" {
			t.Errorf("expected default output dir, got %q", got.OutputDir)
		}
	})

	t.Run("archive override preserved", func(t *testing.T) {
		t.Parallel()

		got := cf.GetFormatConfig("json")
		if got.Archive == nil || *got.Archive {
			t.Error("expected archive override to be false")
		}
	})
}
