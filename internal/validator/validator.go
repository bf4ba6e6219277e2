// Package validator performs whole-flow analysis on session definitions,
// beyond the per-step checks the compiler does at load time.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/parley/internal/compiler"
)

// ValidateFlow crawls the definition from its first step and reports steps
// no combination of answers can reach. Branch rules are data, not code, so
// reachability is decidable: a step is reachable through declared order
// from any earlier step without terminal routing, or through a goto.
func ValidateFlow(def *compiler.Definition) error {
	if len(def.Steps) == 0 {
		return fmt.Errorf("definition has no steps")
	}

	index := make(map[string]int, len(def.Steps))
	for i, s := range def.Steps {
		if s.ID != "" {
			index[s.ID] = i
		}
	}

	visited := make(map[int]bool)
	queue := []int{0}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		for _, next := range successors(def, index, cur) {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var unreachable []string
	for i, s := range def.Steps {
		if !visited[i] {
			unreachable = append(unreachable, fmt.Sprintf("step %d (%q)", i, s.ID))
		}
	}
	if len(unreachable) > 0 {
		return fmt.Errorf("found %d unreachable step(s):\n- %s",
			len(unreachable), strings.Join(unreachable, "\n- "))
	}
	return nil
}

// successors lists the step indexes one step can hand off to: every goto
// target, plus the declared-order fallback unless every routing rule is
// unconditional and terminal or redirecting.
func successors(def *compiler.Definition, index map[string]int, cur int) []int {
	step := def.Steps[cur]

	var out []int
	fallsThrough := true

	for _, rule := range step.Next {
		if rule.Goto != "" && rule.Goto != "end" {
			if idx, ok := index[rule.Goto]; ok {
				out = append(out, idx)
			}
		}
		// An unconditional rule always fires. Declared order stays live
		// only when that rule itself defers to it (empty goto).
		if rule.When == "" {
			fallsThrough = rule.Goto == ""
			break
		}
	}

	if fallsThrough {
		// When predicates can skip any number of following steps, so all
		// of them are potential successors.
		for i := cur + 1; i < len(def.Steps); i++ {
			out = append(out, i)
			if def.Steps[i].When == "" {
				break // unconditional step stops the skip chain
			}
		}
	}
	return out
}
