package dialogue

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voxa-labs/voxa/llm"
	"github.com/voxa-labs/voxa/memory"
)

// Execution modes for the turn state machine.
const (
	ModeGraph      = "graph"      // conditional-edge graph engine
	ModeSequential = "sequential" // hand-written sequential calls
)

const (
	defaultAppMode  = "cli"
	defaultLogDir   = "data/logs"
	defaultObserver = "noop"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	Mode     string `yaml:"mode"`     // only "cli" is implemented
	Engine   string `yaml:"engine"`   // "graph" or "sequential"
	LogDir   string `yaml:"log_dir"`  // directory for log output
	Observer string `yaml:"observer"` // observer registry name for engine events
}

// PromptsConfig points at the prompt files. Missing files fall back to
// built-in defaults, never to an error.
type PromptsConfig struct {
	SystemPrompt string `yaml:"system_prompt"` // file path
	MemoryPrompt string `yaml:"memory_prompt"` // file path
}

// Config holds initialization parameters for the engine and its
// subsystems. Each subsystem section delegates to that subsystem's
// config-driven constructor.
type Config struct {
	App     AppConfig     `yaml:"app"`
	RAG     memory.Config `yaml:"rag"`
	LLM     llm.Config    `yaml:"llm"`
	Prompts PromptsConfig `yaml:"prompts"`
}

// DefaultConfig returns a Config with sensible defaults for all sections.
func DefaultConfig() Config {
	return Config{
		App: AppConfig{
			Mode:     defaultAppMode,
			Engine:   ModeGraph,
			LogDir:   defaultLogDir,
			Observer: defaultObserver,
		},
		RAG: memory.DefaultConfig(),
		LLM: llm.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	if source.App.Mode != "" {
		c.App.Mode = source.App.Mode
	}
	if source.App.Engine != "" {
		c.App.Engine = source.App.Engine
	}
	if source.App.LogDir != "" {
		c.App.LogDir = source.App.LogDir
	}
	if source.App.Observer != "" {
		c.App.Observer = source.App.Observer
	}

	c.RAG.Merge(&source.RAG)
	c.LLM.Merge(&source.LLM)

	if source.Prompts.SystemPrompt != "" {
		c.Prompts.SystemPrompt = source.Prompts.SystemPrompt
	}
	if source.Prompts.MemoryPrompt != "" {
		c.Prompts.MemoryPrompt = source.Prompts.MemoryPrompt
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.App.Engine {
	case ModeGraph, ModeSequential:
		return nil
	default:
		return fmt.Errorf("unknown engine mode: %q", c.App.Engine)
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// A missing file is not an error: all defaults apply silently.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// loadPromptFile reads a prompt file, returning fallback when the path is
// empty or the file cannot be read.
func loadPromptFile(path, fallback string) string {
	if path == "" {
		return fallback
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return fallback
	}
	return text
}
