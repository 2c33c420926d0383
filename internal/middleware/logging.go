package middleware

import (
	"log/slog"
	"time"

	"github.com/mmynk/tipsplitter/internal/form"
)

// Logging returns a reducer middleware that logs every dispatched event.
// It logs the event name, the inputs after the update, and the duration.
func Logging(logger *slog.Logger) form.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next form.Reducer) form.Reducer {
		return func(s form.State, e form.Event) form.State {
			start := time.Now()

			out := next(s, e)

			logger.Debug("Event applied",
				"event", e.Name(),
				"amount", float64(out.Amount),
				"party_size", int(out.PartySize),
				"tip_rate", int(out.TipRate),
				"focused", out.AmountFocused,
				"selected", out.Selected.String(),
				"duration_us", time.Since(start).Microseconds(),
			)
			if s == out {
				logger.Debug("Event had no effect", "event", e.Name())
			}

			return out
		}
	}
}
