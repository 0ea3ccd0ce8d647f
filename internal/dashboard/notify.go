package dashboard

import "github.com/rs/zerolog/log"

// Notifier receives the transient user-facing notifications (toasts in the
// web UI). Controllers report every outcome through it exactly once.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log. The console
// front end uses it directly; tests substitute a recording implementation.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) {
	log.Info().Str("kind", "success").Msg(msg)
}

func (LogNotifier) Error(msg string) {
	log.Error().Str("kind", "error").Msg(msg)
}
