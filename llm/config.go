package llm

// Config holds LLM client initialization parameters. APIKeyEnv names the
// environment variable holding the credential; an empty or unset variable
// is valid and keeps the client in placeholder mode.
type Config struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	APIKeyEnv   string  `yaml:"api_key_env"`
}

// DefaultConfig returns the default LLM configuration.
func DefaultConfig() Config {
	return Config{
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		APIKeyEnv:   "OPENAI_API_KEY",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Provider != "" {
		c.Provider = source.Provider
	}
	if source.Model != "" {
		c.Model = source.Model
	}
	if source.Temperature > 0 {
		c.Temperature = source.Temperature
	}
	if source.APIKeyEnv != "" {
		c.APIKeyEnv = source.APIKeyEnv
	}
}

// NewClient creates a Client from configuration. Every provider value
// currently resolves to the deterministic placeholder; the config keeps
// the provider/model/credential surface a real client will consume.
func NewClient(_ *Config) (Client, error) {
	return NewPlaceholder(), nil
}
