package tools

import "strings"

// ToolSummarize is the registry name of the summarize tool.
const ToolSummarize = "summarize"

// Summarize is a placeholder summarizer: it keeps the head and tail
// fragments of its input instead of calling a model.
type Summarize struct{}

// NewSummarize creates the summarize tool.
func NewSummarize() *Summarize {
	return &Summarize{}
}

func (*Summarize) Name() string {
	return ToolSummarize
}

// Input returns the joined retrieved context, falling back to the raw
// utterance when no context was retrieved this turn.
func (*Summarize) Input(utterance string, retrieved []string) string {
	if joined := strings.Join(retrieved, "\n"); joined != "" {
		return joined
	}
	return utterance
}

func (*Summarize) Run(input string) string {
	text := strings.TrimSpace(input)
	if text == "" {
		return "（无可总结内容）"
	}

	runes := []rune(text)
	head := string(runes[:min(len(runes), 80)])
	tail := ""
	if len(runes) > 160 {
		tail = string(runes[len(runes)-80:])
	}

	if tail == "" {
		return "总结：" + head
	}
	return "总结：" + head + " ... " + tail
}
