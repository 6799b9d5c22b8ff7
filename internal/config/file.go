package config

// FormatConfig holds per-format export settings.
// This allows, for example, routing HTML pages to a web root while
// markdown reports go to a shared documents directory.
type FormatConfig struct {
	// OutputDir overrides the output directory for this format.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Product overrides the filename slug for this format.
	Product string `yaml:"product,omitempty"`

	// Archive overrides whether exports in this format are recorded
	// in the archive database.
	Archive *bool `yaml:"archive,omitempty"`
}

// File represents the structure of the .truthcast configuration file.
type File struct {
	// Formats maps format names (json, markdown, html) to their
	// format-specific settings.
	Formats map[string]FormatConfig `yaml:"formats,omitempty"`

	// Defaults contains default export settings applied to all formats
	// unless overridden in the format-specific configuration.
	Defaults FormatConfig `yaml:"defaults,omitempty"`
}

// GetFormatConfig returns the settings for a specific export format.
// It merges the format-specific configuration with defaults.
func (cf *File) GetFormatConfig(format string) FormatConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with format-specific configuration if present
	if fc, ok := cf.Formats[format]; ok {
		if fc.OutputDir != "" {
			result.OutputDir = fc.OutputDir
		}
		if fc.Product != "" {
			result.Product = fc.Product
		}
		if fc.Archive != nil {
			result.Archive = fc.Archive
		}
	}

	return result
}
