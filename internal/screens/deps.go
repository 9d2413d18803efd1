// Package screens holds what every application screen shares.
package screens

import (
	"time"

	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/logging"
	"github.com/abhisek/feynman/internal/session"
)

// Deps are the collaborators passed to every screen.
type Deps struct {
	Session *session.State
	Logger  *logging.Logger

	// ProcessingDelay is how long the "processing" phase lasts after notes
	// are submitted.
	ProcessingDelay time.Duration

	// SaveModel persists the feedback model. Nil disables saving.
	SaveModel func(feedback.Model) error
}

// Log returns the session-scoped logger, or a no-op logger.
func (d Deps) Log() *logging.Logger {
	if d.Logger == nil {
		return logging.Nop()
	}
	if d.Session == nil {
		return d.Logger
	}
	return d.Logger.With("session", d.Session.ID)
}
