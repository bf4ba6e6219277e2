package domain

import "errors"

// ErrNotATerminal is returned when the process is not attached to a real
// terminal and interactive prompting is impossible.
var ErrNotATerminal = errors.New("not attached to a terminal")

// ErrStepNotFound is returned when a branch rule names a step that does not
// exist in the session definition.
var ErrStepNotFound = errors.New("step not found")

// ErrSessionNotStarted is returned when events are dispatched before Start.
var ErrSessionNotStarted = errors.New("session not started")
