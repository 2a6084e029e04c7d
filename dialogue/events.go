package dialogue

import "github.com/voxa-labs/voxa/observability"

// Dialogue engine event types emitted per turn.
const (
	EventTurnStart    observability.EventType = "turn.start"
	EventTurnComplete observability.EventType = "turn.complete"
	EventRouteSelect  observability.EventType = "turn.route.select"
	EventToolInvoke   observability.EventType = "turn.tool.invoke"
	EventMemoryWrite  observability.EventType = "turn.memory.write"
	EventTurnError    observability.EventType = "turn.error"
)
