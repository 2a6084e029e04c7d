// Package voice defines the speech collaborator boundaries. Audio capture
// and playback live outside the dialogue core; the engine only sees these
// two narrow interfaces, and the bundled placeholders keep the pipeline
// runnable without any audio stack.
package voice

import "context"

// Transcriber converts recorded audio into text. An empty result means
// "no transcription available" and is not an error; callers fall back to
// pre-supplied text input.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Synthesizer renders text to an audio file and returns its path. An
// empty path is a valid placeholder outcome, not a failure.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// PlaceholderTranscriber never produces a transcription, forcing the
// text-input fallback.
type PlaceholderTranscriber struct{}

func (PlaceholderTranscriber) Transcribe(context.Context, string) (string, error) {
	return "", nil
}

// PlaceholderSynthesizer produces no audio output.
type PlaceholderSynthesizer struct{}

func (PlaceholderSynthesizer) Synthesize(context.Context, string) (string, error) {
	return "", nil
}
