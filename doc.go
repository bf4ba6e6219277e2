/*
Package parley is an interactive prompt session engine for terminals.

It drives an ordered or conditionally-branching sequence of prompts (text
entry, single/multi select, confirmation, notes), validating each answer,
supporting backward navigation, and aggregating the results into a typed
session record.

# Concept

A session is a list of Steps. Each step names a prompt factory and optional
branch predicates: When decides whether the step runs, Next picks the
follow-up from the answers recorded so far. The orchestrator owns the
navigation history and the answer mapping; prompts own only their transient
buffers. The runner owns the terminal: raw mode, the key event loop, signal
handling and diffed rendering.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/parley"
		"github.com/aretw0/parley/pkg/domain"
		"github.com/aretw0/parley/pkg/ports"
		"github.com/aretw0/parley/pkg/prompts"
		"github.com/aretw0/parley/pkg/runner"
		"github.com/aretw0/parley/pkg/validate"
	)

	func main() {
		steps := []parley.Step{
			{ID: "name", Prompt: func() ports.Prompt {
				return prompts.NewInput("What's your name?", prompts.WithValidators(validate.Required()))
			}},
			{ID: "age", Prompt: func() ports.Prompt {
				return prompts.NewInput("How old are you?",
					prompts.WithValidators(validate.AtLeast(0)),
					prompts.WithCoerce(prompts.IntValue))
			}, Next: func(a domain.Answers) (string, bool) {
				if age, ok := a.Int("age"); ok && age < 18 {
					return "guardian", true
				}
				return "plan", true
			}},
			{ID: "guardian", Prompt: func() ports.Prompt {
				return prompts.NewInput("Guardian's name?")
			}, Next: func(domain.Answers) (string, bool) { return "", false }},
			{ID: "plan", Prompt: func() ports.Prompt {
				return prompts.NewSelect("Pick a plan", prompts.Choices("basic", "pro"))
			}},
		}

		session, err := parley.New(steps, parley.WithName("signup"))
		if err != nil {
			log.Fatal(err)
		}

		result, err := runner.New().Run(context.Background(), session)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(result.Status, result.Answers)
	}

Esc steps back to the previous question for edit-in-place; Ctrl+C cancels
the session, keeping the answers recorded so far readable in the result.
*/
package parley
