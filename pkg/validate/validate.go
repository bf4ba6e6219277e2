package validate

import "github.com/aretw0/parley/pkg/domain"

// Func checks one candidate answer. The error message is user-facing; it is
// rendered inline under the prompt. prior is a read-only copy of previously
// recorded answers, for validators that need cross-step context.
type Func func(value string, prior domain.Answers) error

// Chain runs validators in declaration order and stops at the first
// failure. Fail-fast is deliberate: the user sees exactly one problem at a
// time, corrected in place.
type Chain []Func

// Run executes the chain over the candidate value.
func (c Chain) Run(value string, prior domain.Answers) error {
	for _, fn := range c {
		if err := fn(value, prior); err != nil {
			return err
		}
	}
	return nil
}
