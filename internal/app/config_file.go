package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Field names
// mirror the CLI flags so a config file reads like a saved command line.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	Top       int      `yaml:"top" json:"top"`
	Bigrams   bool     `yaml:"bigrams" json:"bigrams"`
	Stopwords []string `yaml:"stopwords" json:"stopwords"`
	MinLen    int      `yaml:"minLen" json:"minLen"`
	Stem      bool     `yaml:"stem" json:"stem"`
	StripRefs bool     `yaml:"stripRefs" json:"stripRefs"`

	Cloud struct {
		Font string `yaml:"font" json:"font"`
	} `yaml:"cloud" json:"cloud"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are still unset or at their flag default. Flags should already have
// been parsed; this lets the file supply defaults while explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const (
		outputDefault = "output"
		topDefault    = 100
		minLenDefault = 3
	)

	if cfg.InputDir == "" && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == outputDefault) && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if (cfg.TopN == 0 || cfg.TopN == topDefault) && fc.Top > 0 {
		cfg.TopN = fc.Top
	}
	if !cfg.Bigrams && fc.Bigrams {
		cfg.Bigrams = true
	}
	if len(cfg.ExtraStopwords) == 0 && len(fc.Stopwords) > 0 {
		cfg.ExtraStopwords = append([]string{}, fc.Stopwords...)
	}
	if (cfg.MinTokenLen == 0 || cfg.MinTokenLen == minLenDefault) && fc.MinLen > 0 {
		cfg.MinTokenLen = fc.MinLen
	}
	if !cfg.Stem && fc.Stem {
		cfg.Stem = true
	}
	if !cfg.StripRefs && fc.StripRefs {
		cfg.StripRefs = true
	}
	if cfg.FontFile == "" && fc.Cloud.Font != "" {
		cfg.FontFile = fc.Cloud.Font
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks required settings and argument ranges. The input
// directory must exist before any processing begins. All failures are
// ConfigError values.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputDir) == "" {
		return ConfigError("input directory is required")
	}
	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return ConfigError(fmt.Sprintf("input directory: %v", err))
	}
	if !info.IsDir() {
		return ConfigError(fmt.Sprintf("input path %q is not a directory", cfg.InputDir))
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return ConfigError("output directory is required")
	}
	if cfg.TopN <= 0 {
		return ConfigError("top must be positive")
	}
	if cfg.MinTokenLen < 0 {
		return ConfigError("negative minimum token length is not allowed")
	}
	return nil
}
