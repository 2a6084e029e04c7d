package observability

import "context"

// MultiObserver fans each event out to a fixed set of sinks, in order.
// The CLI uses one to tee engine events into its console logger and a
// JSON log file.
type MultiObserver struct {
	sinks []Observer
}

// NewMultiObserver creates a MultiObserver over the non-nil sinks.
func NewMultiObserver(sinks ...Observer) *MultiObserver {
	kept := make([]Observer, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiObserver{sinks: kept}
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, s := range m.sinks {
		s.OnEvent(ctx, event)
	}
}
