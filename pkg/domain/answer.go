package domain

import (
	"fmt"
	"strconv"
)

// Answers is the mapping from step ID to the validated, typed value the user
// submitted for it. Branch predicates and validators receive a copy, so they
// can read freely but cannot reach back into session state.
type Answers map[string]any

// Has reports whether a step has a recorded answer.
func (a Answers) Has(stepID string) bool {
	_, ok := a[stepID]
	return ok
}

// String returns the answer as a string, or "" when missing.
func (a Answers) String(stepID string) string {
	v, ok := a[stepID]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Int returns the answer as an int. Stored strings are parsed, so callers
// don't need to care whether the prompt coerced its value.
func (a Answers) Int(stepID string) (int, bool) {
	switch v := a[stepID].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Bool returns the answer as a bool.
func (a Answers) Bool(stepID string) (bool, bool) {
	v, ok := a[stepID].(bool)
	return v, ok
}

// Strings returns a multi-select answer as a slice of labels.
func (a Answers) Strings(stepID string) []string {
	switch v := a[stepID].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Clone returns a shallow copy. Values are immutable by convention
// (strings, numbers, bools, label slices), so a map copy is enough.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Result is the finalized outcome of a session.
type Result struct {
	// Answers maps step IDs to their recorded values. On a cancelled session
	// it contains the answers for steps completed strictly before the abort.
	Answers Answers

	// Order lists the step IDs in the order they were answered.
	Order []string

	// Status is Completed or Cancelled.
	Status SessionStatus
}
