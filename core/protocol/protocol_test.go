package protocol_test

import (
	"testing"

	"github.com/voxa-labs/voxa/core/protocol"
)

func TestNewMessage(t *testing.T) {
	msg := protocol.NewMessage(protocol.RoleUser, "你好")

	if msg.Role != protocol.RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, protocol.RoleUser)
	}
	if msg.Content != "你好" {
		t.Errorf("Content = %q, want %q", msg.Content, "你好")
	}
	if msg.Meta != nil {
		t.Errorf("Meta = %v, want nil", msg.Meta)
	}
}

func TestNewTaggedMessage(t *testing.T) {
	msg := protocol.NewTaggedMessage(protocol.RoleAssistant, "reply", map[string]any{"mode": "direct"})

	if msg.Meta["mode"] != "direct" {
		t.Errorf("Meta[mode] = %v, want %q", msg.Meta["mode"], "direct")
	}
}

func TestLastUserContent(t *testing.T) {
	tests := []struct {
		name     string
		messages []protocol.Message
		want     string
	}{
		{
			name:     "empty slice",
			messages: nil,
			want:     "",
		},
		{
			name: "no user messages",
			messages: []protocol.Message{
				protocol.NewMessage(protocol.RoleSystem, "prompt"),
				protocol.NewMessage(protocol.RoleAssistant, "reply"),
			},
			want: "",
		},
		{
			name: "single user message",
			messages: []protocol.Message{
				protocol.NewMessage(protocol.RoleUser, "first"),
			},
			want: "first",
		},
		{
			name: "most recent user message wins",
			messages: []protocol.Message{
				protocol.NewMessage(protocol.RoleUser, "first"),
				protocol.NewMessage(protocol.RoleAssistant, "reply"),
				protocol.NewMessage(protocol.RoleUser, "second"),
			},
			want: "second",
		},
		{
			name: "trailing assistant message is skipped",
			messages: []protocol.Message{
				protocol.NewMessage(protocol.RoleUser, "question"),
				protocol.NewMessage(protocol.RoleAssistant, "answer"),
			},
			want: "question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := protocol.LastUserContent(tt.messages); got != tt.want {
				t.Errorf("LastUserContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
