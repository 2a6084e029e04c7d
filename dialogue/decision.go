package dialogue

// DecisionKind discriminates the closed set of routing outcomes. Keeping
// the variant closed lets the engine switch exhaustively instead of
// falling through a stringly-typed default at runtime.
type DecisionKind uint8

const (
	// DecisionDirect answers the turn with a plain LLM call.
	DecisionDirect DecisionKind = iota

	// DecisionTool dispatches the turn to exactly one named tool before
	// merging its output into the reply.
	DecisionTool
)

// Decision is the router's output for one turn: either the direct-answer
// path or a single named tool.
type Decision struct {
	Kind DecisionKind
	Tool string // tool name, set only when Kind == DecisionTool
}

// Direct returns the direct-answer decision.
func Direct() Decision {
	return Decision{Kind: DecisionDirect}
}

// UseTool returns a decision dispatching to the named tool.
func UseTool(name string) Decision {
	return Decision{Kind: DecisionTool, Tool: name}
}

// IsDirect reports whether the decision takes the direct-answer path.
func (d Decision) IsDirect() bool {
	return d.Kind == DecisionDirect
}

// String returns "direct" or the tool name, for event metadata.
func (d Decision) String() string {
	if d.Kind == DecisionTool {
		return d.Tool
	}
	return "direct"
}
