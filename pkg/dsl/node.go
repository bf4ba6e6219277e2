package dsl

import (
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// StepBuilder provides a fluent API for configuring a step's navigation.
type StepBuilder struct {
	step    ports.Step
	builder *Builder

	// targets collects statically-known goto ids for Build-time checking.
	targets []string
}

// When gates the step on a predicate; a skipped step falls to the next one
// in declaration order.
func (s *StepBuilder) When(pred func(domain.Answers) bool) *StepBuilder {
	s.step.When = pred
	return s
}

// Go routes unconditionally to the target step after this one is answered.
func (s *StepBuilder) Go(target string) *StepBuilder {
	s.targets = append(s.targets, target)
	prev := s.step.Next
	s.step.Next = func(a domain.Answers) (string, bool) {
		if prev != nil {
			if id, ok := prev(a); !ok || id != "" {
				return id, ok
			}
		}
		return target, true
	}
	return s
}

// Branch routes to the target step when the predicate holds. Branches are
// tried in declaration order; if none holds, declared order continues.
func (s *StepBuilder) Branch(pred func(domain.Answers) bool, target string) *StepBuilder {
	s.targets = append(s.targets, target)
	prev := s.step.Next
	s.step.Next = func(a domain.Answers) (string, bool) {
		if prev != nil {
			if id, ok := prev(a); !ok || id != "" {
				return id, ok
			}
		}
		if pred(a) {
			return target, true
		}
		return "", true
	}
	return s
}

// Terminal completes the session after this step, regardless of what
// follows in declaration order.
func (s *StepBuilder) Terminal() *StepBuilder {
	s.step.Next = func(domain.Answers) (string, bool) { return "", false }
	return s
}

// Next sets a custom routing predicate, replacing any Go/Branch rules.
func (s *StepBuilder) Next(fn func(domain.Answers) (string, bool)) *StepBuilder {
	s.targets = nil
	s.step.Next = fn
	return s
}
