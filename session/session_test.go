package session_test

import (
	"testing"

	"github.com/voxa-labs/voxa/core/protocol"
	"github.com/voxa-labs/voxa/session"
)

func TestNewState_UniqueIDs(t *testing.T) {
	a := session.NewState()
	b := session.NewState()

	if a.ID() == "" {
		t.Error("ID() is empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("two states share ID %q", a.ID())
	}
}

func TestState_MessageLogIsAppendOnly(t *testing.T) {
	s := session.NewState()
	s.AddUserMessage("你好", map[string]any{"source": "cli"})
	s.AddAssistantMessage("回复", map[string]any{"mode": "direct"})
	s.AddUserMessage("再见", nil)

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Messages() returned %d messages, want 3", len(msgs))
	}

	want := []protocol.Role{protocol.RoleUser, protocol.RoleAssistant, protocol.RoleUser}
	for i, role := range want {
		if msgs[i].Role != role {
			t.Errorf("Messages()[%d].Role = %q, want %q", i, msgs[i].Role, role)
		}
	}

	if msgs[0].Meta["source"] != "cli" {
		t.Errorf("Messages()[0].Meta[source] = %v, want %q", msgs[0].Meta["source"], "cli")
	}
}

func TestState_MessagesReturnsCopy(t *testing.T) {
	s := session.NewState()
	s.AddUserMessage("original", nil)

	msgs := s.Messages()
	msgs[0].Content = "mutated"

	if got := s.Messages()[0].Content; got != "original" {
		t.Errorf("message log content = %q after mutating copy, want %q", got, "original")
	}
}

func TestState_LastUserText(t *testing.T) {
	s := session.NewState()

	if got := s.LastUserText(); got != "" {
		t.Errorf("LastUserText() on empty log = %q, want empty", got)
	}

	s.AddUserMessage("第一句", nil)
	s.AddAssistantMessage("回复", nil)

	if got := s.LastUserText(); got != "第一句" {
		t.Errorf("LastUserText() = %q, want %q", got, "第一句")
	}

	s.AddUserMessage("第二句", nil)
	if got := s.LastUserText(); got != "第二句" {
		t.Errorf("LastUserText() = %q, want %q", got, "第二句")
	}
}

func TestState_BeginTurnResetsTurnScopedFields(t *testing.T) {
	s := session.NewState()
	s.STTText = "transcript"
	s.RetrievedContext = []string{"snippet"}
	s.ResponseText = "stale reply"
	s.ShouldWriteMemory = true
	s.AddUserMessage("kept", nil)

	s.BeginTurn()

	if s.RetrievedContext != nil {
		t.Errorf("RetrievedContext = %v, want nil", s.RetrievedContext)
	}
	if s.ResponseText != "" {
		t.Errorf("ResponseText = %q, want empty", s.ResponseText)
	}
	if s.ShouldWriteMemory {
		t.Error("ShouldWriteMemory = true, want false")
	}

	// Caller-supplied input and the message log survive a turn boundary.
	if s.STTText != "transcript" {
		t.Errorf("STTText = %q, want %q", s.STTText, "transcript")
	}
	if len(s.Messages()) != 1 {
		t.Errorf("Messages() length = %d, want 1", len(s.Messages()))
	}
}

func TestState_ToolCallAudit(t *testing.T) {
	s := session.NewState()

	if calls := s.ToolCalls(); len(calls) != 0 {
		t.Fatalf("ToolCalls() on new state = %v, want empty", calls)
	}

	s.RecordToolCall("web_search")
	s.RecordToolCall("summarize")

	calls := s.ToolCalls()
	if len(calls) != 2 {
		t.Fatalf("ToolCalls() returned %d entries, want 2", len(calls))
	}
	if calls[0].Tool != "web_search" || calls[1].Tool != "summarize" {
		t.Errorf("ToolCalls() = %v, want [web_search summarize]", calls)
	}

	// The audit log survives turn resets.
	s.BeginTurn()
	if len(s.ToolCalls()) != 2 {
		t.Error("BeginTurn() cleared the tool call audit log")
	}
}
