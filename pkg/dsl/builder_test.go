package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/dsl"
	"github.com/aretw0/parley/pkg/prompts"
	"github.com/aretw0/parley/pkg/validate"
)

func TestBuilderDeclarationOrder(t *testing.T) {
	flow := dsl.New()
	flow.Input("name", "Name?")
	flow.Select("plan", "Plan?", prompts.Choices("basic", "pro"))
	flow.Confirm("ok", "Proceed?")

	steps, err := flow.Build()
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "name", steps[0].ID)
	assert.Equal(t, "plan", steps[1].ID)
	assert.Equal(t, "ok", steps[2].ID)

	for _, s := range steps {
		assert.NotNil(t, s.Prompt())
	}
}

func TestBuilderBranchThenGo(t *testing.T) {
	flow := dsl.New()
	flow.Input("age", "Age?", prompts.WithCoerce(prompts.IntValue), prompts.WithValidators(validate.Int())).
		Branch(func(a domain.Answers) bool {
			age, _ := a.Int("age")
			return age < 18
		}, "guardian").
		Go("plan")
	flow.Input("guardian", "Guardian?").Terminal()
	flow.Select("plan", "Plan?", prompts.Choices("basic"))

	steps, err := flow.Build()
	require.NoError(t, err)

	next := steps[0].Next
	require.NotNil(t, next)

	id, ok := next(domain.Answers{"age": 16})
	assert.True(t, ok)
	assert.Equal(t, "guardian", id)

	id, ok = next(domain.Answers{"age": 30})
	assert.True(t, ok)
	assert.Equal(t, "plan", id)
}

func TestBuilderTerminalCompletes(t *testing.T) {
	flow := dsl.New()
	flow.Input("a", "A?").Terminal()
	flow.Input("b", "B?")

	steps, err := flow.Build()
	require.NoError(t, err)

	_, ok := steps[0].Next(domain.Answers{})
	assert.False(t, ok)
}

func TestBuilderWhenGate(t *testing.T) {
	flow := dsl.New()
	flow.Input("plan", "Plan?")
	flow.Input("billing", "Billing?").When(func(a domain.Answers) bool {
		return a.String("plan") == "pro"
	})

	steps, err := flow.Build()
	require.NoError(t, err)
	require.NotNil(t, steps[1].When)
	assert.True(t, steps[1].When(domain.Answers{"plan": "pro"}))
	assert.False(t, steps[1].When(domain.Answers{"plan": "basic"}))
}

func TestBuilderRejectsUnknownTarget(t *testing.T) {
	flow := dsl.New()
	flow.Input("a", "A?").Go("nowhere")

	_, err := flow.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nowhere"`)
}
