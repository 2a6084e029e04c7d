package llm

import (
	"context"

	"github.com/voxa-labs/voxa/core/protocol"
)

// replyPrefixLimit caps how much of the user utterance the placeholder
// echoes back.
const replyPrefixLimit = 200

// Placeholder is a deterministic, credential-free Client: it echoes a
// truncated prefix of the last user message. It never fails for
// well-formed input, which makes the engine fully testable offline.
type Placeholder struct{}

// NewPlaceholder creates a Placeholder client.
func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Chat(_ context.Context, _ string, messages []protocol.Message) (string, error) {
	last := protocol.LastUserContent(messages)

	runes := []rune(last)
	if len(runes) > replyPrefixLimit {
		last = string(runes[:replyPrefixLimit])
	}

	return "（占位回复）我已理解：" + last, nil
}
