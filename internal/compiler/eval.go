package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
)

// rule is a compiled comparison like "age < 18" or "plan == pro". The left
// side names a recorded answer; a bare identifier tests truthiness, so
// confirm answers read as "subscribe" rather than "subscribe == true".
type rule struct {
	stepID string
	op     string
	value  string
}

var ops = []string{"==", "!=", "<=", ">=", "<", ">"}

// parseRule compiles a rule expression. Multi-character operators are
// matched before their single-character prefixes.
func parseRule(expr string) (rule, error) {
	for _, op := range ops {
		left, right, found := strings.Cut(expr, op)
		if !found {
			continue
		}
		r := rule{
			stepID: strings.TrimSpace(left),
			op:     op,
			value:  strings.Trim(strings.TrimSpace(right), `"'`),
		}
		if r.stepID == "" || r.value == "" {
			return rule{}, fmt.Errorf("malformed rule %q", expr)
		}
		return r, nil
	}

	id := strings.TrimSpace(expr)
	if id == "" || strings.ContainsAny(id, " \t") {
		return rule{}, fmt.Errorf("malformed rule %q", expr)
	}
	return rule{stepID: id}, nil
}

// eval applies the rule against the recorded answers. A rule naming an
// unanswered step is false, never an error: with branching, not every step
// has run.
func (r rule) eval(answers domain.Answers) bool {
	if !answers.Has(r.stepID) {
		return false
	}

	if r.op == "" {
		truthy, ok := answers.Bool(r.stepID)
		return ok && truthy
	}

	got := answers.String(r.stepID)

	// Numeric comparison when both sides parse; string comparison otherwise.
	if ln, lerr := strconv.Atoi(strings.TrimSpace(got)); lerr == nil {
		if rn, rerr := strconv.Atoi(r.value); rerr == nil {
			return compareInt(ln, r.op, rn)
		}
	}
	return compareString(got, r.op, r.value)
}

func compareInt(a int, op string, b int) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func compareString(a, op, b string) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}
