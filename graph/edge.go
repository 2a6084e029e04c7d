package graph

// Edge represents a transition between nodes in a state graph.
//
// Edges define valid paths through the graph. The optional Predicate
// determines whether the transition should occur based on current state.
// Edges from the same node are evaluated in registration order and the
// first match wins, so conditional edges must be registered before the
// unconditional fallback.
type Edge[S any] struct {
	// From is the source node name
	From string

	// To is the destination node name
	To string

	// Predicate determines if this edge can be traversed (nil = always transition)
	Predicate Predicate[S]
}

// Predicate evaluates state to determine if an edge can be traversed.
//
// Returns true if the transition should occur, false otherwise.
// Predicates enable conditional routing in state graphs.
type Predicate[S any] func(state S) bool

// Always returns a predicate that always evaluates to true.
//
// Use for unconditional transitions between nodes.
func Always[S any]() Predicate[S] {
	return func(S) bool { return true }
}

// Not inverts a predicate.
func Not[S any](predicate Predicate[S]) Predicate[S] {
	return func(state S) bool {
		return !predicate(state)
	}
}

// And combines predicates with logical AND (all must be true).
func And[S any](predicates ...Predicate[S]) Predicate[S] {
	return func(state S) bool {
		for _, p := range predicates {
			if !p(state) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with logical OR (at least one must be true).
func Or[S any](predicates ...Predicate[S]) Predicate[S] {
	return func(state S) bool {
		for _, p := range predicates {
			if p(state) {
				return true
			}
		}
		return false
	}
}
