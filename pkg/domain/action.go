package domain

// Action is what a prompt asks the orchestrator to do after consuming a
// key event. Prompts never act on the session themselves; they only report.
type Action int

const (
	// ActionContinue means the prompt mutated its own state (or ignored the
	// key entirely) and only a re-render is needed.
	ActionContinue Action = iota

	// ActionSubmit asks the orchestrator to validate the prompt's buffer and,
	// on success, record the answer and advance.
	ActionSubmit

	// ActionBack asks the orchestrator to revisit the previous step.
	ActionBack

	// ActionAbort terminates the session with a cancelled status.
	ActionAbort
)

func (a Action) String() string {
	switch a {
	case ActionSubmit:
		return "submit"
	case ActionBack:
		return "back"
	case ActionAbort:
		return "abort"
	default:
		return "continue"
	}
}
