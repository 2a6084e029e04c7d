// Package session holds the conversation state threaded through dialogue
// turns. A State is owned by exactly one in-flight turn at a time; the
// caller retains it across turns so the message log accumulates for the
// whole conversation.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/voxa-labs/voxa/core/protocol"
)

// ToolCall is one entry in the session's tool invocation audit log.
type ToolCall struct {
	Tool string `json:"tool"`
}

// State is the mutable record a dialogue turn operates on.
//
// The message log and tool-call audit are append-only and guarded for
// concurrent readers; nothing is ever removed from them. The exported
// scalar fields are turn-scoped: the caller supplies AudioInputPath and
// STTText before a turn, the engine overwrites RetrievedContext,
// ResponseText and ShouldWriteMemory during it.
type State struct {
	id string

	mu        sync.RWMutex
	messages  []protocol.Message
	toolCalls []ToolCall

	// AudioInputPath optionally points at a recorded utterance for the
	// speech-to-text collaborator.
	AudioInputPath string

	// STTText is the normalized input text for the current turn. The
	// engine consumes and clears it once the user message is appended.
	STTText string

	// RetrievedContext holds the snippets fetched for the current turn
	// only; it is overwritten every turn and never persisted.
	RetrievedContext []string

	// ResponseText is the current turn's reply.
	ResponseText string

	// ShouldWriteMemory records the current turn's memory-write decision.
	ShouldWriteMemory bool
}

// NewState creates an empty session state with a unique identifier.
func NewState() *State {
	return &State{
		id: uuid.Must(uuid.NewV7()).String(),
	}
}

// ID returns the unique session identifier.
func (s *State) ID() string {
	return s.id
}

// BeginTurn resets the turn-scoped output fields so a turn never observes
// stale values from its predecessor. Caller-supplied input fields
// (STTText, AudioInputPath) are left untouched.
func (s *State) BeginTurn() {
	s.RetrievedContext = nil
	s.ResponseText = ""
	s.ShouldWriteMemory = false
}

// AddUserMessage appends a user-role message tagged with its source
// (e.g., "stt", "cli").
func (s *State) AddUserMessage(content string, meta map[string]any) {
	s.append(protocol.NewTaggedMessage(protocol.RoleUser, content, meta))
}

// AddAssistantMessage appends an assistant-role message tagged with the
// mode that produced it ("direct" or a tool name).
func (s *State) AddAssistantMessage(content string, meta map[string]any) {
	s.append(protocol.NewTaggedMessage(protocol.RoleAssistant, content, meta))
}

func (s *State) append(msg protocol.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a defensive copy of the conversation history in
// insertion order.
func (s *State) Messages() []protocol.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]protocol.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// LastUserText returns the content of the most recent user message, or
// the empty string when the log holds none.
func (s *State) LastUserText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return protocol.LastUserContent(s.messages)
}

// RecordToolCall appends one entry to the tool invocation audit log.
func (s *State) RecordToolCall(tool string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toolCalls = append(s.toolCalls, ToolCall{Tool: tool})
}

// ToolCalls returns a defensive copy of the tool invocation audit log.
func (s *State) ToolCalls() []ToolCall {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]ToolCall, len(s.toolCalls))
	copy(copied, s.toolCalls)
	return copied
}
