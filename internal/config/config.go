package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	serr "renum/internal/errors"
)

// Config represents the application configuration structure.
// It carries defaults for the scan parameters and the rename operation;
// command-line flags override whatever is loaded here.
type Config struct {
	Scan struct {
		Directory string   `yaml:"directory"` // Directory to scan
		Level     int      `yaml:"level"`     // Recursion depth beyond the top directory
		Blacklist []string `yaml:"blacklist"` // Excluded extensions (ignored when whitelist is set)
		Whitelist []string `yaml:"whitelist"` // Admitted extensions; takes precedence when non-empty
		Ignore    []string `yaml:"ignore"`    // Glob patterns pruned during enumeration
	} `yaml:"scan"`
	Rename struct {
		Output      string `yaml:"output"`       // Output directory (wiped and recreated per run)
		StartNumber int    `yaml:"start_number"` // First number consumed by a copied file
		Template    string `yaml:"template"`     // Destination name template with a {number} placeholder
		Verify      bool   `yaml:"verify"`       // Compare digests of source and copied bytes
	} `yaml:"rename"`
	Debug bool `yaml:"debug"` // Enable debug logging
}

// LoadConfig loads configuration from the default location
// (~/.config/renum/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "renum", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, serr.Wrap(err, "error reading config file")
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, serr.NewConfigError("error parsing config file", path, serr.InvalidConfig, err)
	}

	if tempCfg.Scan.Directory != "" {
		cfg.Scan.Directory = tempCfg.Scan.Directory
	}
	if tempCfg.Scan.Level > 0 {
		cfg.Scan.Level = tempCfg.Scan.Level
	}
	if len(tempCfg.Scan.Blacklist) > 0 {
		cfg.Scan.Blacklist = tempCfg.Scan.Blacklist
	}
	if len(tempCfg.Scan.Whitelist) > 0 {
		cfg.Scan.Whitelist = tempCfg.Scan.Whitelist
	}
	if len(tempCfg.Scan.Ignore) > 0 {
		cfg.Scan.Ignore = tempCfg.Scan.Ignore
	}
	if tempCfg.Rename.Output != "" {
		cfg.Rename.Output = tempCfg.Rename.Output
	}
	if tempCfg.Rename.StartNumber > 0 {
		cfg.Rename.StartNumber = tempCfg.Rename.StartNumber
	}
	if tempCfg.Rename.Template != "" {
		cfg.Rename.Template = tempCfg.Rename.Template
	}
	cfg.Rename.Verify = tempCfg.Rename.Verify
	cfg.Debug = tempCfg.Debug

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Scan.Directory = "."
	cfg.Scan.Level = 1
	cfg.Scan.Blacklist = []string{}
	cfg.Scan.Whitelist = []string{}
	cfg.Scan.Ignore = []string{}
	cfg.Rename.Output = "./output"
	cfg.Rename.StartNumber = 1
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// Normalize brings the extension sets into canonical form: lower-cased,
// leading dot stripped, empty entries dropped.
func (c *Config) Normalize() {
	c.Scan.Blacklist = NormalizeExtensions(c.Scan.Blacklist)
	c.Scan.Whitelist = NormalizeExtensions(c.Scan.Whitelist)
}

// NormalizeExtensions canonicalizes a list of extension strings.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		out = append(out, ext)
	}
	return out
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return serr.NewConfigError("nil config", "", serr.InvalidConfig, nil)
	}
	if c.Scan.Level < 0 {
		return serr.NewConfigError("recursion level must be >= 0", "scan.level", serr.InvalidConfig, nil)
	}
	if c.Rename.StartNumber < 0 {
		return serr.NewConfigError("start number must be >= 0", "rename.start_number", serr.InvalidConfig, nil)
	}
	if c.Rename.Output == "" {
		return serr.NewConfigError("output directory is required", "rename.output", serr.InvalidConfig, nil)
	}
	return nil
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return serr.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return serr.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return serr.Wrap(err, "failed to write config file")
	}

	return nil
}
