// Package tools defines the side-effect-free text transformers the
// dialogue engine can dispatch a turn to, and the registry that holds
// them.
package tools

import (
	"fmt"
	"sync"
)

// Tool is a named, total text transformer. Run never fails and always
// produces non-empty output, including for empty input. Input selects the
// text a tool operates on for a turn, so the engine stays ignorant of
// per-tool input conventions.
type Tool interface {
	// Name returns the registry key for this tool.
	Name() string

	// Input selects the tool's input from the turn's raw utterance and
	// the retrieved context snippets.
	Input(utterance string, retrieved []string) string

	// Run transforms the input into the tool's output text.
	Run(input string) string
}

// Registry holds a fixed set of tools keyed by name.
// Thread-safe for concurrent access.
type Registry struct {
	entries map[string]Tool
	mu      sync.RWMutex
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Tool)}
}

// NewDefaultRegistry creates a registry holding the three reference tools
// (web_search, summarize, emotion_detect).
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range []Tool{NewWebSearch(), NewSummarize(), NewEmotionDetect()} {
		if err := r.Register(t); err != nil {
			panic(fmt.Sprintf("failed to register builtin tool: %v", err))
		}
	}
	return r
}

// Register adds a tool to the registry.
// Returns ErrAlreadyExists if a tool with the same name is registered.
func (r *Registry) Register(tool Tool) error {
	if tool == nil || tool.Name() == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[tool.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, tool.Name())
	}

	r.entries[tool.Name()] = tool
	return nil
}

// Get retrieves a tool by name.
// Returns the tool and true if found, nil and false otherwise.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.entries[name]
	return t, exists
}

// Names returns the names of all registered tools in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}
