// Package graph provides a generic directed state-graph execution engine.
//
// A Graph is defined once as nodes plus predicate edges and executed with
// an initial state value. State flows node to node; the first matching
// outgoing edge selects the successor, enabling LangGraph-style conditional
// routing with compile-time typed state.
package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voxa-labs/voxa/observability"
)

const defaultMaxIterations = 100

// Config defines configuration for graph execution.
type Config struct {
	// Name identifies the graph for observability
	Name string

	// MaxIterations limits graph execution to prevent infinite loops
	// (0 = default of 100)
	MaxIterations int

	// Observer receives execution events (nil = NoOpObserver)
	Observer observability.Observer
}

// Graph defines a workflow as a directed graph of nodes and edges.
//
// Example workflow structure:
//
//	g := graph.New[*Turn](graph.Config{Name: "dialogue-turn"})
//	g.AddNode("retrieve", retrieveNode)
//	g.AddNode("answer", answerNode)
//	g.AddEdge("retrieve", "answer", nil)
//	g.SetEntryPoint("retrieve")
//	g.SetExitPoint("answer")
//	result, err := g.Execute(ctx, turn)
type Graph[S any] struct {
	name          string
	nodes         map[string]Node[S]
	edges         map[string][]Edge[S]
	entryPoint    string
	exitPoints    map[string]bool
	maxIterations int
	observer      observability.Observer
}

// New creates an empty graph from configuration.
func New[S any](cfg Config) *Graph[S] {
	observer := cfg.Observer
	if observer == nil {
		observer = observability.NoOpObserver{}
	}

	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	return &Graph[S]{
		name:          cfg.Name,
		nodes:         make(map[string]Node[S]),
		edges:         make(map[string][]Edge[S]),
		exitPoints:    make(map[string]bool),
		maxIterations: maxIterations,
		observer:      observer,
	}
}

// Name returns the graph identifier for event metadata.
func (g *Graph[S]) Name() string {
	return g.name
}

// AddNode registers a computation step in the graph.
//
// Nodes must have unique names. Adding a duplicate node returns an error.
func (g *Graph[S]) AddNode(name string, node Node[S]) error {
	if name == "" {
		return fmt.Errorf("node name cannot be empty")
	}

	if node == nil {
		return fmt.Errorf("node cannot be nil")
	}

	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("node %s already exists", name)
	}

	g.nodes[name] = node
	return nil
}

// AddEdge creates a transition between nodes.
//
// Both nodes must exist before adding an edge. Predicate can be nil for
// unconditional transitions. Multiple edges from the same node are allowed
// and evaluated in registration order.
func (g *Graph[S]) AddEdge(from, to string, predicate Predicate[S]) error {
	if from == "" {
		return fmt.Errorf("from node cannot be empty")
	}

	if to == "" {
		return fmt.Errorf("to node cannot be empty")
	}

	if _, exists := g.nodes[from]; !exists {
		return fmt.Errorf("from node %s does not exist", from)
	}

	if _, exists := g.nodes[to]; !exists {
		return fmt.Errorf("to node %s does not exist", to)
	}

	g.edges[from] = append(g.edges[from], Edge[S]{
		From:      from,
		To:        to,
		Predicate: predicate,
	})
	return nil
}

// SetEntryPoint defines the starting node for execution.
//
// The entry point node must exist. Only one entry point is allowed.
func (g *Graph[S]) SetEntryPoint(node string) error {
	if node == "" {
		return fmt.Errorf("entry point cannot be empty")
	}

	if g.entryPoint != "" {
		return fmt.Errorf("entry point already set to %s", g.entryPoint)
	}

	if _, exists := g.nodes[node]; !exists {
		return fmt.Errorf("entry point node %s does not exist", node)
	}

	g.entryPoint = node
	return nil
}

// SetExitPoint defines a terminal node where execution stops.
//
// Multiple exit points are supported - call this method multiple times
// to register different termination conditions. The exit point node must exist.
func (g *Graph[S]) SetExitPoint(node string) error {
	if node == "" {
		return fmt.Errorf("exit point cannot be empty")
	}

	if _, exists := g.nodes[node]; !exists {
		return fmt.Errorf("exit point node %s does not exist", node)
	}

	g.exitPoints[node] = true
	return nil
}

// Validate checks graph structure for common configuration errors.
//
// Validation ensures:
//   - At least one node exists
//   - Entry point is set and exists
//   - At least one exit point is set
//
// This method is called internally by Execute but can be called explicitly
// to validate graph structure before execution.
func (g *Graph[S]) Validate() error {
	if len(g.nodes) == 0 {
		return fmt.Errorf("graph has no nodes")
	}

	if g.entryPoint == "" {
		return fmt.Errorf("entry point not set")
	}

	if len(g.exitPoints) == 0 {
		return fmt.Errorf("no exit points set")
	}

	return nil
}

// Execute runs the graph from entry point with initial state.
//
// Execution follows this algorithm:
//  1. Validate graph structure
//  2. Start at entry point node
//  3. Execute current node with state
//  4. Stop if current node is an exit point
//  5. Evaluate outgoing edges in order to find next node
//  6. Repeat from step 3 with next node
//
// Cycle detection and iteration limits prevent infinite loops.
// Observer receives events for all execution milestones.
//
// Returns ExecutionError with full path context on failure.
func (g *Graph[S]) Execute(ctx context.Context, initialState S) (S, error) {
	state := initialState

	if err := g.Validate(); err != nil {
		return state, fmt.Errorf("graph validation failed: %w", err)
	}

	runID := uuid.New().String()

	g.observer.OnEvent(ctx, observability.Event{
		Type:      EventGraphStart,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    g.name,
		Data: map[string]any{
			"entry_point": g.entryPoint,
			"run_id":      runID,
			"exit_points": len(g.exitPoints),
		},
	})

	current := g.entryPoint
	iterations := 0
	visited := make(map[string]int)
	path := make([]string, 0, len(g.nodes))

	for {
		if err := ctx.Err(); err != nil {
			return state, &ExecutionError{
				Node: current,
				Path: path,
				Err:  fmt.Errorf("execution cancelled: %w", err),
			}
		}

		iterations++
		if iterations > g.maxIterations {
			return state, &ExecutionError{
				Node: current,
				Path: path,
				Err:  fmt.Errorf("max iterations (%d) exceeded", g.maxIterations),
			}
		}

		visited[current]++
		path = append(path, current)

		if visited[current] > 1 {
			g.observer.OnEvent(ctx, observability.Event{
				Type:      EventCycleDetected,
				Level:     observability.LevelWarning,
				Timestamp: time.Now(),
				Source:    g.name,
				Data: map[string]any{
					"node":        current,
					"visit_count": visited[current],
					"iteration":   iterations,
				},
			})
		}

		node, exists := g.nodes[current]
		if !exists {
			return state, &ExecutionError{
				Node: current,
				Path: path,
				Err:  fmt.Errorf("node %s not found", current),
			}
		}

		g.observer.OnEvent(ctx, observability.Event{
			Type:      EventNodeStart,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    g.name,
			Data: map[string]any{
				"node":      current,
				"iteration": iterations,
				"run_id":    runID,
			},
		})

		newState, err := node.Execute(ctx, state)

		g.observer.OnEvent(ctx, observability.Event{
			Type:      EventNodeComplete,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    g.name,
			Data: map[string]any{
				"node":      current,
				"iteration": iterations,
				"error":     err != nil,
			},
		})

		if err != nil {
			return state, &ExecutionError{
				Node: current,
				Path: path,
				Err:  fmt.Errorf("node execution failed: %w", err),
			}
		}

		state = newState

		if g.exitPoints[current] {
			g.observer.OnEvent(ctx, observability.Event{
				Type:      EventGraphComplete,
				Level:     observability.LevelVerbose,
				Timestamp: time.Now(),
				Source:    g.name,
				Data: map[string]any{
					"exit_point":  current,
					"iterations":  iterations,
					"path_length": len(path),
				},
			})

			return state, nil
		}

		edges, hasEdges := g.edges[current]
		if !hasEdges {
			return state, &ExecutionError{
				Node: current,
				Path: path,
				Err:  fmt.Errorf("node %s has no outgoing edges and is not an exit point", current),
			}
		}

		nextNode := ""
		for i, edge := range edges {
			if edge.Predicate == nil || edge.Predicate(state) {
				nextNode = edge.To

				g.observer.OnEvent(ctx, observability.Event{
					Type:      EventEdgeTransition,
					Level:     observability.LevelVerbose,
					Timestamp: time.Now(),
					Source:    g.name,
					Data: map[string]any{
						"from":       edge.From,
						"to":         edge.To,
						"edge_index": i,
					},
				})

				break
			}
		}

		if nextNode == "" {
			return state, &ExecutionError{
				Node: current,
				Path: path,
				Err:  fmt.Errorf("no valid transition from node %s", current),
			}
		}

		current = nextNode
	}
}
