/*
Package dsl provides a fluent builder for constructing sessions in Go.

It is an alternative to writing []parley.Step literals: steps read top to
bottom, routing is chained onto the step it belongs to, and goto targets
are checked at build time so a typo fails before the session runs.

Example usage:

	package main

	import (
		"github.com/aretw0/parley/pkg/domain"
		"github.com/aretw0/parley/pkg/dsl"
		"github.com/aretw0/parley/pkg/prompts"
		"github.com/aretw0/parley/pkg/validate"
	)

	func main() {
		flow := dsl.New()

		flow.Input("name", "What's your name?",
			prompts.WithValidators(validate.Required()))

		flow.Input("age", "How old are you?",
			prompts.WithCoerce(prompts.IntValue),
			prompts.WithValidators(validate.AtLeast(0))).
			Branch(func(a domain.Answers) bool {
				age, _ := a.Int("age")
				return age < 18
			}, "guardian").
			Go("plan")

		flow.Input("guardian", "Guardian's name?").Terminal()

		flow.Select("plan", "Pick a plan", prompts.Choices("basic", "pro"))

		steps, err := flow.Build()
		// ... pass steps to parley.New(...)
		_ = steps
		_ = err
	}
*/
package dsl
