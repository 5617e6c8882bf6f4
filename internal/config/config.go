package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Hash algorithm names accepted in configuration.
const (
	AlgoMD5    = "md5"
	AlgoBlake3 = "blake3"
)

// CollisionPolicy decides what happens when a move target already exists
type CollisionPolicy string

const (
	// PolicyOverwrite silently replaces the destination
	PolicyOverwrite CollisionPolicy = "overwrite"
	// PolicySkip leaves the source file where it is
	PolicySkip CollisionPolicy = "skip"
	// PolicyError marks the move failed without touching either file
	PolicyError CollisionPolicy = "error"
)

// Validate checks the policy value
func (p CollisionPolicy) Validate() error {
	switch p {
	case PolicyOverwrite, PolicySkip, PolicyError:
		return nil
	default:
		return fmt.Errorf("must be one of overwrite, skip, error (got %q)", p)
	}
}

// Config represents the classifier configuration
type Config struct {
	HashAlgorithm   string          `yaml:"hash_algorithm"`
	ChunkSizeKB     int             `yaml:"chunk_size_kb"`
	QuickHashMinKB  int             `yaml:"quick_hash_min_kb"`
	MinFileSize     int64           `yaml:"min_file_size"` // in bytes
	OnCollision     CollisionPolicy `yaml:"on_collision"`
	TrashDir        string          `yaml:"trash_dir"`
	ExcludePatterns []string        `yaml:"exclude_patterns"`
	Verbose         bool            `yaml:"verbose"`
}

// ChunkSize returns the streaming chunk size in bytes
func (c *Config) ChunkSize() int {
	if c.ChunkSizeKB <= 0 {
		return DefaultChunkSizeKB * 1024
	}
	return c.ChunkSizeKB * 1024
}

// QuickHashMin returns the minimum file size, in bytes, for which the
// duplicate pipeline bothers with a quick-hash prefilter. Below it a
// full digest costs about the same as the prefilter would.
func (c *Config) QuickHashMin() int64 {
	return int64(c.QuickHashMinKB) * 1024
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.HashAlgorithm {
	case AlgoMD5, AlgoBlake3, "":
	default:
		return fmt.Errorf("unknown hash algorithm: %q", c.HashAlgorithm)
	}

	if c.ChunkSizeKB < 0 {
		return fmt.Errorf("chunk size must be >= 0")
	}
	if c.QuickHashMinKB < 0 {
		return fmt.Errorf("quick hash minimum must be >= 0")
	}
	if c.MinFileSize < 0 {
		return fmt.Errorf("min file size must be >= 0")
	}

	if err := c.OnCollision.Validate(); err != nil {
		return fmt.Errorf("on_collision: %w", err)
	}

	if c.TrashDir == "" || filepath.Base(c.TrashDir) != c.TrashDir {
		return fmt.Errorf("trash dir must be a bare directory name: %q", c.TrashDir)
	}

	// Exclude patterns must be valid glob syntax
	for _, pattern := range c.ExcludePatterns {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// Path returns the default config path
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "filekit", "config.yaml"), nil
}
