package observability

import (
	"context"

	"github.com/rs/zerolog"
)

// ZerologObserver emits events to a zerolog.Logger. The CLI wires one of
// these over a console writer, optionally teed into a JSON log file under
// the configured log directory.
type ZerologObserver struct {
	logger zerolog.Logger
}

// NewZerologObserver creates a ZerologObserver that emits to the given logger.
func NewZerologObserver(logger zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{logger: logger}
}

func (o *ZerologObserver) OnEvent(ctx context.Context, event Event) {
	var ev *zerolog.Event
	switch {
	case event.Level <= 8:
		ev = o.logger.Debug()
	case event.Level <= 12:
		ev = o.logger.Info()
	case event.Level <= 16:
		ev = o.logger.Warn()
	default:
		ev = o.logger.Error()
	}

	ev = ev.Str("source", event.Source)
	for k, v := range event.Data {
		ev = ev.Interface(k, v)
	}
	ev.Msg(string(event.Type))
}
