package voice_test

import (
	"context"
	"testing"

	"github.com/voxa-labs/voxa/voice"
)

func TestPlaceholderTranscriber(t *testing.T) {
	var tr voice.Transcriber = voice.PlaceholderTranscriber{}

	text, err := tr.Transcribe(context.Background(), "data/audio/input.wav")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "" {
		t.Errorf("Transcribe() = %q, want empty transcription", text)
	}
}

func TestPlaceholderSynthesizer(t *testing.T) {
	var syn voice.Synthesizer = voice.PlaceholderSynthesizer{}

	path, err := syn.Synthesize(context.Background(), "你好")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if path != "" {
		t.Errorf("Synthesize() = %q, want empty path", path)
	}
}
