// Package dialogue implements the turn-based conversation core: the
// state machine that normalizes input, appends it to the session log,
// retrieves context from long-term memory, routes the turn to a direct
// LLM answer or exactly one tool, merges tool output into the reply,
// decides whether the turn is worth remembering, and hands the reply to
// speech synthesis.
//
// The engine initializes from configuration via New, creating all
// collaborators internally. Functional options allow overrides of any
// collaborator.
//
//	cfg := dialogue.DefaultConfig()
//	e, err := dialogue.New(&cfg)
//	state := session.NewState()
//	state.STTText = "你好"
//	err = e.RunTurn(ctx, state)
//	fmt.Println(state.ResponseText)
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voxa-labs/voxa/core/protocol"
	"github.com/voxa-labs/voxa/graph"
	"github.com/voxa-labs/voxa/llm"
	"github.com/voxa-labs/voxa/memory"
	"github.com/voxa-labs/voxa/observability"
	"github.com/voxa-labs/voxa/session"
	"github.com/voxa-labs/voxa/tools"
	"github.com/voxa-labs/voxa/voice"
)

const (
	// defaultHistoryWindow bounds how many recent messages the direct
	// prompt carries.
	defaultHistoryWindow = 10

	defaultSystemPrompt = "你是一个助理。"
)

// turn carries the per-turn scratch values alongside the session state:
// the normalized input, the routing decision, and the raw tool output.
// Scratch lives here (typed) instead of in an open key-value bag on the
// session.
type turn struct {
	state      *session.State
	input      string
	decision   Decision
	toolOutput string
}

// Option configures an Engine after config-driven initialization.
// Applied by New after cold start — overrides replace config-created
// defaults.
type Option func(*Engine)

// WithLLM overrides the config-created LLM client.
func WithLLM(c llm.Client) Option {
	return func(e *Engine) { e.llm = c }
}

// WithStore overrides the config-created memory store.
func WithStore(s memory.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithTools overrides the default tool registry.
func WithTools(r *tools.Registry) Option {
	return func(e *Engine) { e.tools = r }
}

// WithRouter overrides the default router.
func WithRouter(r *Router) Option {
	return func(e *Engine) { e.router = r }
}

// WithSalience overrides the default memory-write policy.
func WithSalience(s Salience) Option {
	return func(e *Engine) { e.salience = s }
}

// WithTranscriber overrides the placeholder speech-to-text collaborator.
func WithTranscriber(t voice.Transcriber) Option {
	return func(e *Engine) { e.stt = t }
}

// WithSynthesizer overrides the placeholder text-to-speech collaborator.
func WithSynthesizer(s voice.Synthesizer) Option {
	return func(e *Engine) { e.tts = s }
}

// WithObserver overrides the observer resolved from the registry by the
// configured name.
func WithObserver(o observability.Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithMode overrides the configured execution mode (ModeGraph or
// ModeSequential).
func WithMode(mode string) Option {
	return func(e *Engine) { e.mode = mode }
}

// Engine is the dialogue orchestrator. It owns the collaborators and
// drives a session state through one turn at a time; no collaborator
// calls another except through the engine.
type Engine struct {
	llm      llm.Client
	store    memory.Store
	tools    *tools.Registry
	router   *Router
	salience Salience
	stt      voice.Transcriber
	tts      voice.Synthesizer
	observer observability.Observer

	systemPrompt  string
	memoryPrompt  string
	historyWindow int
	mode          string

	turnGraph *graph.Graph[*turn]
}

// New creates an Engine from configuration. Collaborators (LLM client,
// memory store, tool registry, voice placeholders) are initialized from
// their respective config sections, and the observer is resolved from
// the observability registry by its configured name. Functional options
// applied after initialization can override any of them.
func New(cfg *Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := llm.NewClient(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	store, err := memory.NewStore(&cfg.RAG)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory store: %w", err)
	}

	observer, err := observability.GetObserver(cfg.App.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	e := &Engine{
		llm:           client,
		store:         store,
		tools:         tools.NewDefaultRegistry(),
		router:        NewRouter(),
		salience:      NewKeywordSalience(),
		stt:           voice.PlaceholderTranscriber{},
		tts:           voice.PlaceholderSynthesizer{},
		observer:      observer,
		systemPrompt:  loadPromptFile(cfg.Prompts.SystemPrompt, defaultSystemPrompt),
		memoryPrompt:  loadPromptFile(cfg.Prompts.MemoryPrompt, ""),
		historyWindow: defaultHistoryWindow,
		mode:          cfg.App.Engine,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.turnGraph, err = e.buildTurnGraph()
	if err != nil {
		return nil, err
	}

	return e, nil
}

// RunTurn drives the session state through one complete turn. The
// turn-scoped output fields are reset first so no stage can observe a
// stale value from a previous turn; by return, state.ResponseText is set
// on every non-error path.
func (e *Engine) RunTurn(ctx context.Context, state *session.State) error {
	if state == nil {
		return ErrNilState
	}

	state.BeginTurn()

	t := &turn{state: state}

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventTurnStart,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "dialogue.RunTurn",
		Data: map[string]any{
			"session": state.ID(),
			"mode":    e.mode,
		},
	})

	var err error
	switch e.mode {
	case ModeSequential:
		err = e.runSequential(ctx, t)
	default:
		err = e.runGraph(ctx, t)
	}

	if err != nil {
		e.observer.OnEvent(ctx, observability.Event{
			Type:      EventTurnError,
			Level:     observability.LevelError,
			Timestamp: time.Now(),
			Source:    "dialogue.RunTurn",
			Data: map[string]any{
				"session": state.ID(),
				"error":   err.Error(),
			},
		})
		return err
	}

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventTurnComplete,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "dialogue.RunTurn",
		Data: map[string]any{
			"session":         state.ID(),
			"decision":        t.decision.String(),
			"response_length": len(state.ResponseText),
			"memory_written":  state.ShouldWriteMemory,
		},
	})

	return nil
}

// normalizeInput resolves the turn's input text: pre-supplied transcript
// first, then the speech-to-text collaborator when an audio path is set,
// then the most recent user message already in the log. Absent input
// resolves to the empty string, never to an error.
func (e *Engine) normalizeInput(ctx context.Context, t *turn) (*turn, error) {
	text := t.state.STTText

	if text == "" && t.state.AudioInputPath != "" && e.stt != nil {
		transcript, err := e.stt.Transcribe(ctx, t.state.AudioInputPath)
		if err != nil {
			return t, fmt.Errorf("transcription failed: %w", err)
		}
		text = transcript
	}

	if text == "" {
		text = t.state.LastUserText()
	}

	t.input = text
	return t, nil
}

// appendUserMessage appends the normalized text as a user message tagged
// with its source, then clears the consumed transcript so it cannot leak
// into the next turn. Empty input appends nothing.
func (e *Engine) appendUserMessage(_ context.Context, t *turn) (*turn, error) {
	if t.input != "" {
		t.state.AddUserMessage(t.input, map[string]any{"source": "stt"})
	}
	t.state.STTText = ""
	return t, nil
}

// retrieveContext queries the memory store with the latest user
// utterance. An empty utterance issues no query at all.
func (e *Engine) retrieveContext(ctx context.Context, t *turn) (*turn, error) {
	query := t.state.LastUserText()
	if query == "" {
		t.state.RetrievedContext = nil
		return t, nil
	}

	snippets, err := e.store.Search(ctx, query)
	if err != nil {
		return t, fmt.Errorf("context retrieval failed: %w", err)
	}

	t.state.RetrievedContext = snippets
	return t, nil
}

// selectRoute invokes the router on the latest user utterance. A decision
// naming an unregistered tool degrades to the direct path here, before
// the branch is taken.
func (e *Engine) selectRoute(ctx context.Context, t *turn) (*turn, error) {
	decision := e.router.Select(t.state.LastUserText())

	if decision.Kind == DecisionTool {
		if _, ok := e.tools.Get(decision.Tool); !ok {
			decision = Direct()
		}
	}

	t.decision = decision

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventRouteSelect,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "dialogue.selectRoute",
		Data: map[string]any{
			"session":  t.state.ID(),
			"decision": decision.String(),
		},
	})

	return t, nil
}

// directAnswer builds the direct prompt (system prompt, recent history,
// retrieved context when any) and calls the LLM once. The reply becomes
// the turn's response and is appended as an assistant message tagged
// mode=direct.
func (e *Engine) directAnswer(ctx context.Context, t *turn) (*turn, error) {
	history := t.state.Messages()
	if len(history) > e.historyWindow {
		history = history[len(history)-e.historyWindow:]
	}

	messages := make([]protocol.Message, 0, len(history)+2)
	messages = append(messages, protocol.NewMessage(protocol.RoleSystem, e.systemPrompt))
	messages = append(messages, history...)

	if len(t.state.RetrievedContext) > 0 {
		messages = append(messages, protocol.NewMessage(
			protocol.RoleSystem,
			"相关上下文：\n"+strings.Join(t.state.RetrievedContext, "\n"),
		))
	}

	reply, err := e.llm.Chat(ctx, e.systemPrompt, messages)
	if err != nil {
		return t, fmt.Errorf("llm call failed: %w", err)
	}

	t.state.ResponseText = reply
	t.state.AddAssistantMessage(reply, map[string]any{"mode": "direct"})
	return t, nil
}

// invokeTool runs the decided tool on its declared input and records the
// invocation in the session audit log. The raw output stays in turn
// scratch until merged.
func (e *Engine) invokeTool(ctx context.Context, t *turn) (*turn, error) {
	tool, ok := e.tools.Get(t.decision.Tool)
	if !ok {
		// selectRoute degrades unknown routes, so this only trips when
		// the registry is mutated mid-turn.
		return t, fmt.Errorf("%w: %s", tools.ErrNotFound, t.decision.Tool)
	}

	input := tool.Input(t.state.LastUserText(), t.state.RetrievedContext)
	t.toolOutput = tool.Run(input)
	t.state.RecordToolCall(tool.Name())

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventToolInvoke,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "dialogue.invokeTool",
		Data: map[string]any{
			"session": t.state.ID(),
			"tool":    tool.Name(),
		},
	})

	return t, nil
}

// mergeToolResult builds the three-message merge prompt (system prompt,
// raw utterance, tool output) and calls the LLM once. The reply becomes
// the turn's response and is appended as an assistant message tagged with
// the tool's name.
func (e *Engine) mergeToolResult(ctx context.Context, t *turn) (*turn, error) {
	messages := []protocol.Message{
		protocol.NewMessage(protocol.RoleSystem, e.systemPrompt),
		protocol.NewMessage(protocol.RoleUser, t.state.LastUserText()),
		protocol.NewMessage(
			protocol.RoleSystem,
			fmt.Sprintf("工具[%s] 输出：\n%s", t.decision.Tool, t.toolOutput),
		),
	}

	reply, err := e.llm.Chat(ctx, e.systemPrompt, messages)
	if err != nil {
		return t, fmt.Errorf("llm call failed: %w", err)
	}

	t.state.ResponseText = reply
	t.state.AddAssistantMessage(reply, map[string]any{"mode": t.decision.Tool})
	return t, nil
}

// decideAndWriteMemory applies the salience policy to the turn's combined
// user+response text and appends a dialogue memory record when it fires.
// The decision is computed exactly once per turn.
func (e *Engine) decideAndWriteMemory(ctx context.Context, t *turn) (*turn, error) {
	text := t.state.LastUserText() + "\n" + t.state.ResponseText

	salient := e.salience.Salient(text)
	t.state.ShouldWriteMemory = salient
	if !salient {
		return t, nil
	}

	if err := e.store.Add(ctx, text, map[string]string{"type": "dialogue"}); err != nil {
		return t, fmt.Errorf("memory write failed: %w", err)
	}

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventMemoryWrite,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "dialogue.decideAndWriteMemory",
		Data: map[string]any{
			"session":     t.state.ID(),
			"text_length": len(text),
		},
	})

	return t, nil
}

// synthesize hands the response to the text-to-speech collaborator. An
// empty output path is a valid placeholder outcome; no session state is
// mutated here.
func (e *Engine) synthesize(ctx context.Context, t *turn) (*turn, error) {
	if e.tts == nil {
		return t, nil
	}

	if _, err := e.tts.Synthesize(ctx, t.state.ResponseText); err != nil {
		return t, fmt.Errorf("speech synthesis failed: %w", err)
	}
	return t, nil
}
