package tools_test

import (
	"strings"
	"testing"

	"github.com/voxa-labs/voxa/tools"
)

// Every reference tool is total: non-empty output for any input,
// including the empty string.
func TestTools_AlwaysProduceOutput(t *testing.T) {
	inputs := []string{"", "你好", "a very plain english sentence", "😀"}

	for _, tool := range []tools.Tool{tools.NewWebSearch(), tools.NewSummarize(), tools.NewEmotionDetect()} {
		for _, input := range inputs {
			if out := tool.Run(input); out == "" {
				t.Errorf("%s.Run(%q) returned empty output", tool.Name(), input)
			}
		}
	}
}

func TestWebSearch_EmbedsQuery(t *testing.T) {
	out := tools.NewWebSearch().Run("今天的新闻")

	if !strings.Contains(out, "今天的新闻") {
		t.Errorf("Run() = %q, want the query embedded", out)
	}
	if !strings.Contains(out, "模拟搜索结果") {
		t.Errorf("Run() = %q, want mock-result marker", out)
	}
}

func TestWebSearch_InputIsUtterance(t *testing.T) {
	got := tools.NewWebSearch().Input("搜索新闻", []string{"ignored context"})

	if got != "搜索新闻" {
		t.Errorf("Input() = %q, want the raw utterance", got)
	}
}

func TestSummarize_Input(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		retrieved []string
		want      string
	}{
		{
			name:      "joined context preferred",
			utterance: "总结一下",
			retrieved: []string{"first snippet", "second snippet"},
			want:      "first snippet\nsecond snippet",
		},
		{
			name:      "falls back to utterance without context",
			utterance: "总结一下",
			retrieved: nil,
			want:      "总结一下",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tools.NewSummarize().Input(tt.utterance, tt.retrieved); got != tt.want {
				t.Errorf("Input() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarize_Run(t *testing.T) {
	tool := tools.NewSummarize()

	t.Run("empty input", func(t *testing.T) {
		if got := tool.Run("   "); got != "（无可总结内容）" {
			t.Errorf("Run() = %q, want placeholder for empty input", got)
		}
	})

	t.Run("short input keeps head only", func(t *testing.T) {
		got := tool.Run("short text")
		if got != "总结：short text" {
			t.Errorf("Run() = %q, want head without ellipsis", got)
		}
	})

	t.Run("long input keeps head and tail", func(t *testing.T) {
		long := strings.Repeat("a", 100) + strings.Repeat("z", 100)
		got := tool.Run(long)

		if !strings.Contains(got, " ... ") {
			t.Errorf("Run() = %q, want ellipsis between head and tail", got)
		}
		if !strings.HasPrefix(got, "总结："+strings.Repeat("a", 80)) {
			t.Errorf("Run() head = %q, want 80-rune prefix", got)
		}
		if !strings.HasSuffix(got, strings.Repeat("z", 80)) {
			t.Errorf("Run() tail = %q, want 80-rune suffix", got)
		}
	})
}

func TestEmotionDetect_Run(t *testing.T) {
	tool := tools.NewEmotionDetect()

	tests := []struct {
		input string
		want  string
	}{
		{"我今天很开心", "检测到情绪：joy"},
		{"他看起来很难过", "检测到情绪：sadness"},
		{"别惹我生气", "检测到情绪：anger"},
		{"我有点担心明天", "检测到情绪：fear"},
		{"一切都还好", "检测到情绪：neutral"},
		{"no lexicon hit here", "情绪倾向：neutral（占位）"},
		{"", "情绪倾向：neutral（占位）"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := tool.Run(tt.input); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
