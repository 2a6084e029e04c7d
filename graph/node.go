package graph

import "context"

// Node represents a computation step in a state graph.
//
// Nodes receive state, perform computation or collaborator calls, and
// return updated state. The interface is minimal to support diverse
// implementations (engine stages, data transforms, test doubles).
type Node[S any] interface {
	// Execute transforms state based on node logic.
	// Returns updated state or error. Context enables cancellation/timeouts.
	Execute(ctx context.Context, state S) (S, error)
}

// FuncNode wraps a function as a Node.
//
// This is the most common Node implementation, enabling inline node
// definitions without creating custom types.
type FuncNode[S any] struct {
	fn func(ctx context.Context, state S) (S, error)
}

// NewFuncNode creates a Node from a function.
//
// Example:
//
//	node := graph.NewFuncNode(func(ctx context.Context, s *Turn) (*Turn, error) {
//	    s.Reply = "done"
//	    return s, nil
//	})
func NewFuncNode[S any](fn func(context.Context, S) (S, error)) Node[S] {
	return &FuncNode[S]{fn: fn}
}

// Execute runs the wrapped function with the given state.
func (n *FuncNode[S]) Execute(ctx context.Context, state S) (S, error) {
	return n.fn(ctx, state)
}
