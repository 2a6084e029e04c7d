package tools

import "strings"

// ToolEmotionDetect is the registry name of the emotion detection tool.
const ToolEmotionDetect = "emotion_detect"

// EmotionDetect is a placeholder emotion classifier over a small keyword
// lexicon. Rules are evaluated in order and the first hit wins.
type EmotionDetect struct {
	rules []emotionRule
}

type emotionRule struct {
	keyword string
	label   string
}

// NewEmotionDetect creates the emotion detection tool with its default
// lexicon.
func NewEmotionDetect() *EmotionDetect {
	return &EmotionDetect{
		rules: []emotionRule{
			{"开心", "joy"},
			{"高兴", "joy"},
			{"难过", "sadness"},
			{"伤心", "sadness"},
			{"生气", "anger"},
			{"愤怒", "anger"},
			{"害怕", "fear"},
			{"担心", "fear"},
			{"平静", "neutral"},
			{"还好", "neutral"},
		},
	}
}

func (*EmotionDetect) Name() string {
	return ToolEmotionDetect
}

// Input returns the raw user utterance; emotion is read off what the user
// said this turn.
func (*EmotionDetect) Input(utterance string, _ []string) string {
	return utterance
}

func (t *EmotionDetect) Run(input string) string {
	for _, rule := range t.rules {
		if strings.Contains(input, rule.keyword) {
			return "检测到情绪：" + rule.label
		}
	}
	return "情绪倾向：neutral（占位）"
}
