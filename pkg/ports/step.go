package ports

import "github.com/aretw0/parley/pkg/domain"

// NextEnd is the branch target that completes the session.
const NextEnd = ""

// Step is one named unit of a session definition: a prompt factory plus
// optional branch predicates. Steps are immutable once the session starts.
type Step struct {
	// ID keys the recorded answer. Left empty, the session assigns a random
	// identifier at construction.
	ID string

	// Prompt builds the step's state machine. Required.
	Prompt PromptFactory

	// When decides whether this step runs when it is reached in declared
	// order. It must be pure and may only read recorded answers. A nil When
	// always runs; a false return skips to the next declared step.
	When func(domain.Answers) bool

	// Next picks the follow-up step after this one is answered. It must be
	// pure and may only read recorded answers (the just-recorded one
	// included). Returning ok=false completes the session. Returning
	// ok=true with an empty ID falls back to declared order. A nil Next
	// always follows declared order.
	Next func(domain.Answers) (id string, ok bool)
}
