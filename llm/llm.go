// Package llm defines the language-model collaborator boundary. The
// dialogue engine only depends on the Client interface; the bundled
// Placeholder implementation answers deterministically with zero
// configured credentials so the whole pipeline runs offline.
package llm

import (
	"context"

	"github.com/voxa-labs/voxa/core/protocol"
)

// Client produces a reply for an ordered prompt. Implementations must
// return non-empty text for well-formed input; retry and timeout policy
// belongs to the implementation, not to callers.
type Client interface {
	Chat(ctx context.Context, systemPrompt string, messages []protocol.Message) (string, error)
}
