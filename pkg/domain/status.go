package domain

// PromptStatus describes where a single prompt is in its lifecycle.
// It doubles as the renderer's styling key.
type PromptStatus string

const (
	PromptHidden    PromptStatus = "hidden"
	PromptActive    PromptStatus = "active"
	PromptWarning   PromptStatus = "warning" // validation failed, editing continues
	PromptSuccess   PromptStatus = "success"
	PromptCancelled PromptStatus = "cancelled"
)

// SessionStatus describes the session as a whole.
type SessionStatus string

const (
	StatusRunning   SessionStatus = "running"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)
