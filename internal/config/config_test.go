package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.HashAlgorithm != AlgoMD5 {
		t.Errorf("HashAlgorithm = %q, want md5", cfg.HashAlgorithm)
	}
	if cfg.ChunkSize() != 8192 {
		t.Errorf("ChunkSize = %d, want 8192", cfg.ChunkSize())
	}
	if cfg.MinFileSize != 0 {
		t.Errorf("MinFileSize = %d, want 0", cfg.MinFileSize)
	}
	if cfg.QuickHashMin() != 64*1024 {
		t.Errorf("QuickHashMin = %d, want %d", cfg.QuickHashMin(), 64*1024)
	}
	if cfg.OnCollision != PolicyOverwrite {
		t.Errorf("OnCollision = %q, want overwrite", cfg.OnCollision)
	}
	if cfg.TrashDir != ".trash" {
		t.Errorf("TrashDir = %q, want .trash", cfg.TrashDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestChunkSizeFallback(t *testing.T) {
	cfg := &Config{ChunkSizeKB: 0}
	if cfg.ChunkSize() != 8192 {
		t.Errorf("zero chunk size should fall back to 8 KiB, got %d", cfg.ChunkSize())
	}

	cfg.ChunkSizeKB = 64
	if cfg.ChunkSize() != 64*1024 {
		t.Errorf("ChunkSize = %d, want %d", cfg.ChunkSize(), 64*1024)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"blake3 ok", func(c *Config) { c.HashAlgorithm = AlgoBlake3 }, false},
		{"empty algorithm ok", func(c *Config) { c.HashAlgorithm = "" }, false},
		{"unknown algorithm", func(c *Config) { c.HashAlgorithm = "sha1" }, true},
		{"negative chunk size", func(c *Config) { c.ChunkSizeKB = -1 }, true},
		{"negative quick hash min", func(c *Config) { c.QuickHashMinKB = -1 }, true},
		{"negative min size", func(c *Config) { c.MinFileSize = -1 }, true},
		{"bad collision policy", func(c *Config) { c.OnCollision = "clobber" }, true},
		{"empty trash dir", func(c *Config) { c.TrashDir = "" }, true},
		{"trash dir with path", func(c *Config) { c.TrashDir = "a/b" }, true},
		{"bad glob", func(c *Config) { c.ExcludePatterns = []string{"[unclosed"} }, true},
		{"good glob", func(c *Config) { c.ExcludePatterns = []string{"*.log", ".DS_Store"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCollisionPolicyValidate(t *testing.T) {
	for _, policy := range []CollisionPolicy{PolicyOverwrite, PolicySkip, PolicyError} {
		if err := policy.Validate(); err != nil {
			t.Errorf("%q should be valid: %v", policy, err)
		}
	}
	if err := CollisionPolicy("merge").Validate(); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HashAlgorithm != AlgoMD5 {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.HashAlgorithm = AlgoBlake3
	cfg.ChunkSizeKB = 32
	cfg.OnCollision = PolicySkip
	cfg.ExcludePatterns = []string{"*.tmp"}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.HashAlgorithm != AlgoBlake3 {
		t.Errorf("HashAlgorithm = %q, want blake3", loaded.HashAlgorithm)
	}
	if loaded.ChunkSizeKB != 32 {
		t.Errorf("ChunkSizeKB = %d, want 32", loaded.ChunkSizeKB)
	}
	if loaded.OnCollision != PolicySkip {
		t.Errorf("OnCollision = %q, want skip", loaded.OnCollision)
	}
	if len(loaded.ExcludePatterns) != 1 || loaded.ExcludePatterns[0] != "*.tmp" {
		t.Errorf("ExcludePatterns = %v", loaded.ExcludePatterns)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hash_algorithm: rot13\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid algorithm")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
