package dsl

import (
	"fmt"

	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/prompts"
)

// Builder accumulates steps in declaration order.
type Builder struct {
	steps []*StepBuilder
	byID  map[string]*StepBuilder
}

// New creates a new flow builder.
func New() *Builder {
	return &Builder{byID: make(map[string]*StepBuilder)}
}

func (b *Builder) add(id string, factory ports.PromptFactory) *StepBuilder {
	sb := &StepBuilder{
		step:    ports.Step{ID: id, Prompt: factory},
		builder: b,
	}
	b.steps = append(b.steps, sb)
	if id != "" {
		b.byID[id] = sb
	}
	return sb
}

// Input adds a text entry step.
func (b *Builder) Input(id, title string, opts ...prompts.InputOption) *StepBuilder {
	return b.add(id, func() ports.Prompt {
		return prompts.NewInput(title, opts...)
	})
}

// Select adds a selection step.
func (b *Builder) Select(id, title string, options []prompts.Option, opts ...prompts.SelectOption) *StepBuilder {
	return b.add(id, func() ports.Prompt {
		return prompts.NewSelect(title, options, opts...)
	})
}

// Confirm adds a Yes/No step.
func (b *Builder) Confirm(id, title string, opts ...prompts.ConfirmOption) *StepBuilder {
	return b.add(id, func() ports.Prompt {
		return prompts.NewConfirm(title, opts...)
	})
}

// Note adds an informational step rendering markdown.
func (b *Builder) Note(id, title, markdown string) *StepBuilder {
	return b.add(id, func() ports.Prompt {
		return prompts.NewNote(title, markdown)
	})
}

// Step adds a pre-built step, for prompt implementations outside this
// package.
func (b *Builder) Step(step ports.Step) *StepBuilder {
	sb := &StepBuilder{step: step, builder: b}
	b.steps = append(b.steps, sb)
	if step.ID != "" {
		b.byID[step.ID] = sb
	}
	return sb
}

// Build returns the steps in declaration order. Goto targets are resolved
// here so a typo fails at build time rather than mid-session.
func (b *Builder) Build() ([]ports.Step, error) {
	for _, sb := range b.steps {
		for _, target := range sb.targets {
			if _, ok := b.byID[target]; !ok {
				return nil, fmt.Errorf("step %q routes to unknown step %q", sb.step.ID, target)
			}
		}
	}

	steps := make([]ports.Step, len(b.steps))
	for i, sb := range b.steps {
		steps[i] = sb.step
	}
	return steps, nil
}
