package domain

// CursorPos locates the text cursor inside a ViewModel body.
// Col is a rune index into the body line, not a display column; the renderer
// translates it to cells.
type CursorPos struct {
	Line    int
	Col     int
	Visible bool
}

// ViewModel is a renderer-agnostic description of what a prompt currently
// looks like. It is a pure function of prompt state and safe to request
// repeatedly for diffed redraws.
type ViewModel struct {
	// Title is the question line.
	Title string

	// Body holds the prompt-specific lines below the title: the input
	// buffer, the choice row, rendered note content.
	Body []string

	// Detail is dim helper text shown under the body.
	Detail string

	// Err is the inline validation message, set while Status is warning.
	Err string

	Status PromptStatus
	Cursor CursorPos
}

// StepView is the condensed form of a completed step, retained by the
// orchestrator after the prompt instance itself is discarded.
type StepView struct {
	ID      string
	Title   string
	Summary string
	Status  PromptStatus
}
