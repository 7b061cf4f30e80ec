package session

import (
	"context"
	"errors"

	"applicant-portal-service/internal/upstream"
)

// State tracks one form session's fetch lifecycle.
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateLoaded   State = "loaded"
	StateNotFound State = "not_found"
	StateErrored  State = "errored"
)

// Notifier receives the user-facing messages a session raises. The HTTP tier
// collects them into the response; other implementations can fan them out.
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}

// ViewportAnchor is the explicit capture/restore pair for the client
// viewport position. The session captures before fetching and restores once
// the form reset has committed, so the anchor never needs timers.
type ViewportAnchor interface {
	Capture() int
	Restore(position int)
}

// Submittable is the capability a parent flow (the onboarding wizard) uses
// to drive a form session without touching its transport or UI events. The
// returned bool reports whether the submission was accepted; a non-nil error
// carries the reason.
type Submittable interface {
	AttemptSubmit(ctx context.Context) (bool, error)
}

// failureMessage renders a notification message for any error a session
// hits. Failures carry their own extraction; everything else degrades to the
// generic string.
func failureMessage(err error) string {
	var failure *upstream.Failure
	if errors.As(err, &failure) {
		return failure.Message()
	}
	return upstream.GenericFailureMessage
}
