package dialogue

import (
	"strings"
	"unicode/utf8"
)

// Salience decides whether a turn's combined user+response text is worth
// persisting to long-term memory. The classifier is pluggable so the
// locale-specific default list never leaks into the engine itself.
type Salience interface {
	Salient(text string) bool
}

const defaultSalienceThreshold = 80

// KeywordSalience is the default salience policy: a turn is write-worthy
// when its text exceeds Threshold runes or contains any of the Keywords.
type KeywordSalience struct {
	Threshold int
	Keywords  []string
}

// NewKeywordSalience creates the default classifier: 80-rune threshold
// plus the preference/goal/birthday/city indicators.
func NewKeywordSalience() *KeywordSalience {
	return &KeywordSalience{
		Threshold: defaultSalienceThreshold,
		Keywords:  []string{"我喜欢", "我的目标", "我的生日", "我的城市"},
	}
}

func (k *KeywordSalience) Salient(text string) bool {
	if utf8.RuneCountInString(text) > k.Threshold {
		return true
	}
	for _, kw := range k.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
