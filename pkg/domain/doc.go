// Package domain holds the core value types of a prompt session: key
// events, prompt actions, answers, statuses and view models. It has no
// dependencies on the terminal, the renderer or the orchestrator, so both
// sides of the engine can share it freely.
package domain
