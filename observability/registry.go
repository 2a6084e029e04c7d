package observability

import (
	"fmt"
	"log/slog"
	"sync"
)

var (
	registry = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	registryMu sync.RWMutex
)

// GetObserver resolves a registered observer by name. The dialogue engine
// resolves its event sink this way from the configured observer name.
// Pre-registered: "noop" (discard) and "slog" (default slog logger).
func GetObserver(name string) (Observer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	obs, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer. Entry points
// register their composed sinks here before creating an engine (the CLI
// registers its console+file observer as "cli").
func RegisterObserver(name string, observer Observer) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = observer
}
