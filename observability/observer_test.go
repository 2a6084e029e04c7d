package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/voxa-labs/voxa/observability"
)

// recordingObserver captures events for assertions.
type recordingObserver struct {
	events []observability.Event
}

func (r *recordingObserver) OnEvent(_ context.Context, event observability.Event) {
	r.events = append(r.events, event)
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  string
	}{
		{observability.LevelVerbose, "DEBUG"},
		{observability.LevelInfo, "INFO"},
		{observability.LevelWarning, "WARN"},
		{observability.LevelError, "ERROR"},
		{observability.Level(2), "TRACE"},
		{observability.Level(22), "FATAL"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  slog.Level
	}{
		{observability.LevelVerbose, slog.LevelDebug},
		{observability.LevelInfo, slog.LevelInfo},
		{observability.LevelWarning, slog.LevelWarn},
		{observability.LevelError, slog.LevelError},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("Level(%d).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMultiObserver_FansOut(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	multi := observability.NewMultiObserver(first, nil, second)

	event := observability.Event{
		Type:      "turn.start",
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "test",
	}
	multi.OnEvent(context.Background(), event)

	if len(first.events) != 1 || len(second.events) != 1 {
		t.Errorf("event counts = %d, %d; want 1, 1", len(first.events), len(second.events))
	}
	if first.events[0].Type != "turn.start" {
		t.Errorf("captured type = %q, want turn.start", first.events[0].Type)
	}
}

func TestObserverRegistry(t *testing.T) {
	if _, err := observability.GetObserver("noop"); err != nil {
		t.Errorf("GetObserver(noop) error = %v", err)
	}
	if _, err := observability.GetObserver("slog"); err != nil {
		t.Errorf("GetObserver(slog) error = %v", err)
	}
	if _, err := observability.GetObserver("missing"); err == nil {
		t.Error("GetObserver(missing) error = nil, want unknown observer")
	}

	custom := &recordingObserver{}
	observability.RegisterObserver("recording", custom)

	got, err := observability.GetObserver("recording")
	if err != nil {
		t.Fatalf("GetObserver(recording) error = %v", err)
	}
	if got != custom {
		t.Error("GetObserver(recording) returned a different observer")
	}
}

func TestZerologObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewZerologObserver(zerolog.New(&buf))

	obs.OnEvent(context.Background(), observability.Event{
		Type:      "turn.complete",
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "dialogue.RunTurn",
		Data:      map[string]any{"session": "abc"},
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}

	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["message"] != "turn.complete" {
		t.Errorf("message = %v, want turn.complete", entry["message"])
	}
	if entry["source"] != "dialogue.RunTurn" {
		t.Errorf("source = %v, want dialogue.RunTurn", entry["source"])
	}
	if entry["session"] != "abc" {
		t.Errorf("session = %v, want abc", entry["session"])
	}
}

func TestZerologObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewZerologObserver(zerolog.New(&buf))

	obs.OnEvent(context.Background(), observability.Event{
		Type:  "turn.error",
		Level: observability.LevelError,
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
}
