package dialogue

import (
	"context"
	"fmt"

	"github.com/voxa-labs/voxa/graph"
)

// Stage names of the turn state machine. The machine is a fixed total
// order with one conditional fan-out after route selection and a
// convergence point before the memory decision:
//
//	normalize_input → append_user_message → retrieve_context →
//	select_route → {direct_answer | invoke_tool → merge_tool_result} →
//	decide_memory → synthesize
const (
	stageNormalizeInput  = "normalize_input"
	stageAppendUser      = "append_user_message"
	stageRetrieveContext = "retrieve_context"
	stageSelectRoute     = "select_route"
	stageDirectAnswer    = "direct_answer"
	stageInvokeTool      = "invoke_tool"
	stageMergeToolResult = "merge_tool_result"
	stageDecideMemory    = "decide_memory"
	stageSynthesize      = "synthesize"
)

// buildTurnGraph assembles the turn state machine for the conditional-edge
// executor. Edge order matters at select_route: the tool edge is
// registered before the unconditional direct fallback.
func (e *Engine) buildTurnGraph() (*graph.Graph[*turn], error) {
	g := graph.New[*turn](graph.Config{
		Name:     "dialogue-turn",
		Observer: e.observer,
	})

	nodes := []struct {
		name string
		fn   func(context.Context, *turn) (*turn, error)
	}{
		{stageNormalizeInput, e.normalizeInput},
		{stageAppendUser, e.appendUserMessage},
		{stageRetrieveContext, e.retrieveContext},
		{stageSelectRoute, e.selectRoute},
		{stageDirectAnswer, e.directAnswer},
		{stageInvokeTool, e.invokeTool},
		{stageMergeToolResult, e.mergeToolResult},
		{stageDecideMemory, e.decideAndWriteMemory},
		{stageSynthesize, e.synthesize},
	}
	for _, n := range nodes {
		if err := g.AddNode(n.name, graph.NewFuncNode(n.fn)); err != nil {
			return nil, fmt.Errorf("failed to build turn graph: %w", err)
		}
	}

	isToolRoute := func(t *turn) bool { return !t.decision.IsDirect() }

	edges := []struct {
		from, to  string
		predicate graph.Predicate[*turn]
	}{
		{stageNormalizeInput, stageAppendUser, nil},
		{stageAppendUser, stageRetrieveContext, nil},
		{stageRetrieveContext, stageSelectRoute, nil},
		{stageSelectRoute, stageInvokeTool, isToolRoute},
		{stageSelectRoute, stageDirectAnswer, nil},
		{stageInvokeTool, stageMergeToolResult, nil},
		{stageMergeToolResult, stageDecideMemory, nil},
		{stageDirectAnswer, stageDecideMemory, nil},
		{stageDecideMemory, stageSynthesize, nil},
	}
	for _, edge := range edges {
		if err := g.AddEdge(edge.from, edge.to, edge.predicate); err != nil {
			return nil, fmt.Errorf("failed to build turn graph: %w", err)
		}
	}

	if err := g.SetEntryPoint(stageNormalizeInput); err != nil {
		return nil, fmt.Errorf("failed to build turn graph: %w", err)
	}
	if err := g.SetExitPoint(stageSynthesize); err != nil {
		return nil, fmt.Errorf("failed to build turn graph: %w", err)
	}

	return g, nil
}

// runGraph executes one turn through the conditional-edge engine.
func (e *Engine) runGraph(ctx context.Context, t *turn) error {
	_, err := e.turnGraph.Execute(ctx, t)
	return err
}

// runSequential executes one turn as direct sequential calls over the
// same stage methods the graph executor runs. Both executors must produce
// identical final session state for every input.
func (e *Engine) runSequential(ctx context.Context, t *turn) error {
	stages := []func(context.Context, *turn) (*turn, error){
		e.normalizeInput,
		e.appendUserMessage,
		e.retrieveContext,
		e.selectRoute,
	}
	for _, stage := range stages {
		if _, err := stage(ctx, t); err != nil {
			return err
		}
	}

	if t.decision.IsDirect() {
		if _, err := e.directAnswer(ctx, t); err != nil {
			return err
		}
	} else {
		if _, err := e.invokeTool(ctx, t); err != nil {
			return err
		}
		if _, err := e.mergeToolResult(ctx, t); err != nil {
			return err
		}
	}

	if _, err := e.decideAndWriteMemory(ctx, t); err != nil {
		return err
	}
	_, err := e.synthesize(ctx, t)
	return err
}
