package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/prompts"
)

const signupYAML = `
title: Signup
steps:
  - id: name
    type: input
    title: "What's your name?"
    options:
      validate: [required]
  - id: age
    type: input
    title: "How old are you?"
    options:
      int: true
      validate:
        - {at_least: 0}
    next:
      - when: "age < 18"
        goto: guardian
      - goto: plan
  - id: guardian
    type: input
    title: "Guardian's name?"
    next:
      - goto: end
  - id: plan
    type: select
    title: "Pick a plan"
    options:
      choices:
        - {label: basic}
        - {label: pro, description: "Everything in basic, plus support"}
`

func TestLoadValidDefinition(t *testing.T) {
	def, err := Load([]byte(signupYAML))
	require.NoError(t, err)
	assert.Equal(t, "Signup", def.Title)
	require.Len(t, def.Steps, 4)
	assert.Equal(t, "age", def.Steps[1].ID)
}

func TestLoadRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"no steps", "title: x", "no steps"},
		{"unknown type", "steps: [{id: a, type: wizard, title: T}]", "unknown type"},
		{"missing title", "steps: [{id: a, type: input}]", "missing title"},
		{"duplicate id", "steps: [{id: a, type: input, title: T}, {id: a, type: input, title: U}]", "duplicate id"},
		{"unknown goto", "steps: [{id: a, type: input, title: T, next: [{goto: nope}]}]", "unknown step"},
		{"malformed rule", "steps: [{id: a, type: input, title: T, when: '<'}]", "malformed rule"},
		{"intro id taken", "intro: hi\nsteps: [{id: intro, type: input, title: T}]", "reserved"},
		{"not yaml", "steps: [", "parse definition"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuildProducesRunnableSteps(t *testing.T) {
	def, err := Load([]byte(signupYAML))
	require.NoError(t, err)

	steps, err := Build(def)
	require.NoError(t, err)
	require.Len(t, steps, 4)

	// Branch rules compile into a Next predicate.
	next := steps[1].Next
	require.NotNil(t, next)

	id, ok := next(domain.Answers{"age": 16})
	assert.True(t, ok)
	assert.Equal(t, "guardian", id)

	id, ok = next(domain.Answers{"age": 30})
	assert.True(t, ok)
	assert.Equal(t, "plan", id)

	// goto: end completes the session.
	_, ok = steps[2].Next(domain.Answers{})
	assert.False(t, ok)

	// Prompts come out typed.
	assert.IsType(t, &prompts.Input{}, steps[0].Prompt())
	assert.IsType(t, &prompts.Select{}, steps[3].Prompt())
}

func TestBuildIntroBecomesNoteStep(t *testing.T) {
	def, err := Load([]byte(`
title: Setup
intro: "Welcome to **setup**."
steps:
  - id: go
    type: confirm
    title: "Proceed?"
`))
	require.NoError(t, err)

	steps, err := Build(def)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "intro", steps[0].ID)
	assert.IsType(t, &prompts.Note{}, steps[0].Prompt())
}

func TestBuildWhenGatesStep(t *testing.T) {
	def, err := Load([]byte(`
steps:
  - id: plan
    type: input
    title: "Plan?"
  - id: billing
    type: input
    title: "Billing email?"
    when: "plan == pro"
`))
	require.NoError(t, err)

	steps, err := Build(def)
	require.NoError(t, err)
	require.NotNil(t, steps[1].When)

	assert.True(t, steps[1].When(domain.Answers{"plan": "pro"}))
	assert.False(t, steps[1].When(domain.Answers{"plan": "basic"}))
	assert.False(t, steps[1].When(domain.Answers{}))
}

func TestBuildRejectsBadOptions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"select without choices", "steps: [{id: a, type: select, title: T}]", "at least one choice"},
		{"unknown validator", "steps: [{id: a, type: input, title: T, options: {validate: [sparkly]}}]", "unknown validator"},
		{"bad regexp", "steps: [{id: a, type: input, title: T, options: {validate: [{matches: '('}]}}]", "matches"},
		{"bad number", "steps: [{id: a, type: input, title: T, options: {validate: [{at_least: soon}]}}]", "at_least"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Load([]byte(tc.yaml))
			require.NoError(t, err)
			_, err = Build(def)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRuleEval(t *testing.T) {
	cases := []struct {
		expr    string
		answers domain.Answers
		want    bool
	}{
		{"age < 18", domain.Answers{"age": 16}, true},
		{"age < 18", domain.Answers{"age": 18}, false},
		{"age >= 18", domain.Answers{"age": "21"}, true},
		{"plan == pro", domain.Answers{"plan": "pro"}, true},
		{"plan != pro", domain.Answers{"plan": "basic"}, true},
		{"subscribe", domain.Answers{"subscribe": true}, true},
		{"subscribe", domain.Answers{"subscribe": false}, false},
		{"missing == x", domain.Answers{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			r, err := parseRule(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.eval(tc.answers))
		})
	}
}

func TestParseRuleQuotedValue(t *testing.T) {
	r, err := parseRule(`city == "São Paulo"`)
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", r.value)
	assert.True(t, r.eval(domain.Answers{"city": "São Paulo"}))
}
