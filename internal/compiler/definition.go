// Package compiler turns YAML session definition files into runnable step
// lists. The CLI uses it so sessions can be authored without writing Go;
// library callers define steps directly and never touch this package.
package compiler

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the root of a session definition file.
type Definition struct {
	Title string    `yaml:"title"`
	Intro string    `yaml:"intro"` // markdown, shown as an opening note
	Outro string    `yaml:"outro"` // closing line under the finished session
	Steps []StepDef `yaml:"steps"`
}

// StepDef is one step in a definition file. Options is the type-specific
// payload, decoded per prompt type at build time.
type StepDef struct {
	ID      string         `yaml:"id"`
	Type    string         `yaml:"type"`
	Title   string         `yaml:"title"`
	Options map[string]any `yaml:"options"`
	When    string         `yaml:"when"` // comparison rule gating the step
	Next    []NextRule     `yaml:"next"` // first matching rule wins
}

// NextRule routes to Goto when its rule matches. A rule-less entry always
// matches; "end" completes the session.
type NextRule struct {
	When string `yaml:"when"`
	Goto string `yaml:"goto"`
}

var promptTypes = map[string]bool{
	"input":       true,
	"select":      true,
	"multiselect": true,
	"confirm":     true,
	"note":        true,
}

// Load parses a definition file and checks it statically: every step needs
// a known type and a title, ids must be unique, and every goto target must
// exist.
func Load(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if err := def.check(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) check() error {
	if len(d.Steps) == 0 {
		return fmt.Errorf("definition has no steps")
	}

	ids := make(map[string]bool, len(d.Steps))
	for i, step := range d.Steps {
		where := fmt.Sprintf("step %d (%q)", i, step.ID)

		if !promptTypes[step.Type] {
			return fmt.Errorf("%s: unknown type %q", where, step.Type)
		}
		if step.Title == "" {
			return fmt.Errorf("%s: missing title", where)
		}
		if step.ID != "" {
			if step.ID == "intro" && d.Intro != "" {
				return fmt.Errorf("%s: id %q is reserved for the intro note", where, step.ID)
			}
			if ids[step.ID] {
				return fmt.Errorf("%s: duplicate id", where)
			}
			ids[step.ID] = true
		}
		if step.When != "" {
			if _, err := parseRule(step.When); err != nil {
				return fmt.Errorf("%s: when: %w", where, err)
			}
		}
		for _, rule := range step.Next {
			if rule.When != "" {
				if _, err := parseRule(rule.When); err != nil {
					return fmt.Errorf("%s: next: %w", where, err)
				}
			}
		}
	}

	for i, step := range d.Steps {
		for _, rule := range step.Next {
			if rule.Goto == "" || rule.Goto == "end" {
				continue
			}
			if !ids[rule.Goto] {
				return fmt.Errorf("step %d (%q): next targets unknown step %q", i, step.ID, rule.Goto)
			}
		}
	}
	return nil
}
