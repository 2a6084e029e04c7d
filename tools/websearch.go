package tools

import "fmt"

// ToolWebSearch is the registry name of the web search tool.
const ToolWebSearch = "web_search"

// WebSearch is a placeholder search tool: it issues no network requests
// and returns mocked result bullet points for any query.
type WebSearch struct{}

// NewWebSearch creates the web search tool.
func NewWebSearch() *WebSearch {
	return &WebSearch{}
}

func (*WebSearch) Name() string {
	return ToolWebSearch
}

// Input returns the raw user utterance; search operates on what the user
// actually asked, not on retrieved context.
func (*WebSearch) Input(utterance string, _ []string) string {
	return utterance
}

func (*WebSearch) Run(input string) string {
	return fmt.Sprintf("[模拟搜索结果] 关于“%s”的简要要点：1) 示例结果A 2) 示例结果B", input)
}
