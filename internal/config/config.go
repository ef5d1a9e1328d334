package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Target describes one deployment destination
type Target struct {
	Bucket       string   `yaml:"bucket"`
	Prefix       string   `yaml:"prefix,omitempty"`
	ACL          string   `yaml:"acl,omitempty"`
	CacheControl string   `yaml:"cache_control,omitempty"`
	SSE          string   `yaml:"sse,omitempty"`
	GzipPatterns []string `yaml:"gzip_patterns,omitempty"`
	Profile      string   `yaml:"profile,omitempty"`
	Region       string   `yaml:"region,omitempty"`
	Endpoint     string   `yaml:"endpoint,omitempty"` // S3-compatible backends
}

// Defaults represents default settings applied when a target omits them
type Defaults struct {
	ACL          string `yaml:"acl,omitempty"`
	CacheControl string `yaml:"cache_control,omitempty"`
	ContentType  string `yaml:"content_type,omitempty"` // inference fallback
}

// NimbusConfig represents the main configuration file (~/.nimbus.yaml)
type NimbusConfig struct {
	CurrentTarget string             `yaml:"current_target,omitempty"`
	Targets       map[string]*Target `yaml:"targets,omitempty"`
	Defaults      *Defaults          `yaml:"defaults,omitempty"`
}

// GetConfigPath returns the config file path (~/.nimbus.yaml)
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nimbus.yaml"
	}
	return filepath.Join(home, ".nimbus.yaml")
}

// Load loads the configuration from ~/.nimbus.yaml
func Load() (*NimbusConfig, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return &NimbusConfig{
				Targets:  make(map[string]*Target),
				Defaults: &Defaults{},
			}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg NimbusConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Targets == nil {
		cfg.Targets = make(map[string]*Target)
	}
	if cfg.Defaults == nil {
		cfg.Defaults = &Defaults{}
	}

	return &cfg, nil
}

// Save saves the configuration to ~/.nimbus.yaml
func Save(cfg *NimbusConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(GetConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetTarget returns the named target, or the current one when name is empty
func GetTarget(name string) (*Target, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	if name == "" {
		name = cfg.CurrentTarget
	}
	if name == "" {
		return nil, "", nil
	}

	target, ok := cfg.Targets[name]
	if !ok {
		return nil, "", fmt.Errorf("target %q not found (known: %v)", name, targetNames(cfg))
	}

	return target, name, nil
}

// SetCurrentTarget switches the active target
func SetCurrentTarget(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Targets[name]; !ok {
		return fmt.Errorf("target %q not found (known: %v)", name, targetNames(cfg))
	}

	cfg.CurrentTarget = name
	return Save(cfg)
}

func targetNames(cfg *NimbusConfig) []string {
	names := make([]string, 0, len(cfg.Targets))
	for name := range cfg.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
