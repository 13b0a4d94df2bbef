package cartsync

import "github.com/rs/zerolog/log"

// Notifier receives user-facing outcome notifications from the sync layer.
// In a full deployment this feeds the toast surface; the default
// implementation writes structured logs.
type Notifier interface {
	// Success reports a confirmed cart mutation.
	Success(message string)
	// Error reports a rejected cart mutation. Description carries the
	// underlying cause.
	Error(message, description string)
}

// LogNotifier is the default Notifier backed by zerolog.
type LogNotifier struct{}

// Success logs a confirmed mutation at info level.
func (LogNotifier) Success(message string) {
	log.Info().Str("component", "cartsync").Msg(message)
}

// Error logs a rejected mutation at warn level.
func (LogNotifier) Error(message, description string) {
	log.Warn().Str("component", "cartsync").Str("cause", description).Msg(message)
}
