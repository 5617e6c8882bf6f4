package config

// DefaultChunkSizeKB is the streaming read size used while hashing.
// Digests are chunk-size independent; only memory use changes.
const DefaultChunkSizeKB = 8

// DefaultQuickHashMinKB is the smallest file size that gets a quick-hash
// prefilter during duplicate detection. Smaller files are fully digested
// directly.
const DefaultQuickHashMinKB = 64

// Default returns the default configuration: MD5 digests, no minimum
// size, silent overwrite on move collisions, a `.trash` sibling
// directory.
func Default() *Config {
	return &Config{
		HashAlgorithm:   AlgoMD5,
		ChunkSizeKB:     DefaultChunkSizeKB,
		QuickHashMinKB:  DefaultQuickHashMinKB,
		MinFileSize:     0,
		OnCollision:     PolicyOverwrite,
		TrashDir:        ".trash",
		ExcludePatterns: []string{},
		Verbose:         false,
	}
}
