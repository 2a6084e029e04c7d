package dialogue

import (
	"strings"

	"github.com/voxa-labs/voxa/tools"
)

// Rule maps a keyword to the tool selected when the keyword occurs in the
// user utterance.
type Rule struct {
	Keyword string
	Tool    string
}

// Router is a pure, stateless keyword router. Rules are evaluated in
// order and the first keyword contained in the utterance wins; rule order
// is significant (first-match, not longest-match). Utterances matching no
// rule take the direct-answer path.
type Router struct {
	rules []Rule
}

// defaultRules mirrors the reference routing table. Order matters: 搜索
// before 查 is deliberate even though both select the same tool.
func defaultRules() []Rule {
	return []Rule{
		{"搜索", tools.ToolWebSearch},
		{"查", tools.ToolWebSearch},
		{"新闻", tools.ToolWebSearch},
		{"总结", tools.ToolSummarize},
		{"概括", tools.ToolSummarize},
		{"心情", tools.ToolEmotionDetect},
		{"情绪", tools.ToolEmotionDetect},
	}
}

// NewRouter creates a Router with the default rule table.
func NewRouter() *Router {
	return NewRouterWithRules(defaultRules())
}

// NewRouterWithRules creates a Router with a custom ordered rule table.
func NewRouterWithRules(rules []Rule) *Router {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Router{rules: copied}
}

// Select maps an utterance to a routing decision. Same input always
// yields the same decision.
func (r *Router) Select(text string) Decision {
	for _, rule := range r.rules {
		if strings.Contains(text, rule.Keyword) {
			return UseTool(rule.Tool)
		}
	}
	return Direct()
}
