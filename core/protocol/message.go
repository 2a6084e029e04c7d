// Package protocol defines the conversation data model shared by the
// dialogue engine, the session log, and the LLM collaborator boundary.
package protocol

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation. Content is plain
// text; Meta carries provenance tags such as the input source ("stt",
// "cli") or the response mode ("direct", tool name). Messages are
// immutable once appended to a session log.
type Message struct {
	Role    Role           `json:"role"`
	Content string         `json:"content"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// NewMessage creates a Message with the given role and content.
//
// Example:
//
//	msg := protocol.NewMessage(protocol.RoleUser, "你好")
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// NewTaggedMessage creates a Message carrying metadata tags.
func NewTaggedMessage(role Role, content string, meta map[string]any) Message {
	return Message{Role: role, Content: content, Meta: meta}
}

// LastUserContent returns the content of the most recent user message in
// the slice, or the empty string when no user message exists.
func LastUserContent(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
