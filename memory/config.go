package memory

import "path/filepath"

const (
	defaultPersistDir = "data/vector_store"
	defaultTopK       = 4

	// recordFile is the JSONL file name inside the persist directory.
	recordFile = "memories.jsonl"
)

// Config holds memory store initialization parameters.
type Config struct {
	PersistDir string `yaml:"persist_dir"` // Directory for the record file.
	TopK       int    `yaml:"top_k"`       // Maximum Search results.
}

// DefaultConfig returns the default memory configuration.
func DefaultConfig() Config {
	return Config{
		PersistDir: defaultPersistDir,
		TopK:       defaultTopK,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.PersistDir != "" {
		c.PersistDir = source.PersistDir
	}
	if source.TopK > 0 {
		c.TopK = source.TopK
	}
}

// NewStore creates a Store from configuration.
func NewStore(cfg *Config) (Store, error) {
	dir := cfg.PersistDir
	if dir == "" {
		dir = defaultPersistDir
	}
	return NewJSONLStore(filepath.Join(dir, recordFile), cfg.TopK)
}
