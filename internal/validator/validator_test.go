package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/internal/compiler"
)

func load(t *testing.T, src string) *compiler.Definition {
	t.Helper()
	def, err := compiler.Load([]byte(src))
	require.NoError(t, err)
	return def
}

func TestValidateFlowLinear(t *testing.T) {
	def := load(t, `
steps:
  - {id: a, type: input, title: A}
  - {id: b, type: input, title: B}
`)
	assert.NoError(t, ValidateFlow(def))
}

func TestValidateFlowBranchesReachEverything(t *testing.T) {
	def := load(t, `
steps:
  - id: age
    type: input
    title: Age
    next:
      - {when: "age < 18", goto: guardian}
      - {goto: plan}
  - {id: guardian, type: input, title: Guardian, next: [{goto: end}]}
  - {id: plan, type: select, title: Plan, options: {choices: [{label: basic}]}}
`)
	assert.NoError(t, ValidateFlow(def))
}

func TestValidateFlowReportsUnreachableStep(t *testing.T) {
	// The unconditional goto jumps over b, and nothing routes to it.
	def := load(t, `
steps:
  - {id: a, type: input, title: A, next: [{goto: c}]}
  - {id: b, type: input, title: B}
  - {id: c, type: input, title: C}
`)
	err := ValidateFlow(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step 1 ("b")`)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestValidateFlowTerminalRouteCutsDeclaredOrder(t *testing.T) {
	def := load(t, `
steps:
  - {id: a, type: input, title: A, next: [{goto: end}]}
  - {id: b, type: input, title: B}
`)
	err := ValidateFlow(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `("b")`)
}

func TestValidateFlowWhenGatedStepsStayReachable(t *testing.T) {
	// A skippable step doesn't strand the steps after it.
	def := load(t, `
steps:
  - {id: plan, type: input, title: Plan}
  - {id: billing, type: input, title: Billing, when: "plan == pro"}
  - {id: done, type: confirm, title: "Done?"}
`)
	assert.NoError(t, ValidateFlow(def))
}

func TestValidateFlowUnconditionalDeferRuleKeepsOrder(t *testing.T) {
	// An unconditional rule with no goto explicitly defers to declared order.
	def := load(t, `
steps:
  - {id: a, type: input, title: A, next: [{when: "a == x", goto: c}, {goto: ""}]}
  - {id: b, type: input, title: B}
  - {id: c, type: input, title: C}
`)
	assert.NoError(t, ValidateFlow(def))
}
