package compiler

import (
	"fmt"
	"regexp"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/prompts"
	"github.com/aretw0/parley/pkg/validate"
)

type inputOptions struct {
	Placeholder string `mapstructure:"placeholder"`
	Default     string `mapstructure:"default"`
	Detail      string `mapstructure:"detail"`
	Secret      bool   `mapstructure:"secret"`
	Int         bool   `mapstructure:"int"`
	Validate    []any  `mapstructure:"validate"`
}

type selectOptions struct {
	Choices []choiceDef `mapstructure:"choices"`
	Min     int         `mapstructure:"min"`
}

type choiceDef struct {
	Label       string `mapstructure:"label"`
	Description string `mapstructure:"description"`
	Hotkey      string `mapstructure:"hotkey"`
	Value       any    `mapstructure:"value"`
}

type confirmOptions struct {
	Default  bool `mapstructure:"default"`
	StopOnNo bool `mapstructure:"stop_on_no"`
}

type noteOptions struct {
	Body string `mapstructure:"body"`
}

// Build converts a checked definition into runnable steps. The intro, when
// present, becomes a leading note step rendering its markdown.
func Build(def *Definition) ([]ports.Step, error) {
	var steps []ports.Step

	if def.Intro != "" {
		intro := def.Intro
		steps = append(steps, ports.Step{ID: "intro", Prompt: func() ports.Prompt {
			return prompts.NewNote(def.Title, intro)
		}})
	}

	for i, sd := range def.Steps {
		factory, err := buildPrompt(sd)
		if err != nil {
			return nil, fmt.Errorf("step %d (%q): %w", i, sd.ID, err)
		}

		step := ports.Step{ID: sd.ID, Prompt: factory}
		if sd.When != "" {
			r, err := parseRule(sd.When)
			if err != nil {
				return nil, fmt.Errorf("step %d (%q): when: %w", i, sd.ID, err)
			}
			step.When = r.eval
		}
		if len(sd.Next) > 0 {
			step.Next = buildNext(sd.Next)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// buildNext compiles routing rules into a Next predicate: first matching
// rule wins, "end" completes, and no match falls back to declared order.
func buildNext(defs []NextRule) func(domain.Answers) (string, bool) {
	type compiled struct {
		rule   *rule
		target string
	}
	rules := make([]compiled, len(defs))
	for i, d := range defs {
		c := compiled{target: d.Goto}
		if d.When != "" {
			r, _ := parseRule(d.When) // checked at Load time
			c.rule = &r
		}
		rules[i] = c
	}

	return func(answers domain.Answers) (string, bool) {
		for _, c := range rules {
			if c.rule != nil && !c.rule.eval(answers) {
				continue
			}
			if c.target == "end" {
				return "", false
			}
			return c.target, true
		}
		return "", true
	}
}

func buildPrompt(sd StepDef) (ports.PromptFactory, error) {
	switch sd.Type {
	case "input":
		return buildInput(sd)
	case "select":
		return buildSelect(sd, false)
	case "multiselect":
		return buildSelect(sd, true)
	case "confirm":
		return buildConfirm(sd)
	case "note":
		return buildNote(sd)
	}
	return nil, fmt.Errorf("unknown type %q", sd.Type)
}

func buildInput(sd StepDef) (ports.PromptFactory, error) {
	var o inputOptions
	if err := decode(sd.Options, &o); err != nil {
		return nil, err
	}

	opts := []prompts.InputOption{}
	if o.Placeholder != "" {
		opts = append(opts, prompts.WithPlaceholder(o.Placeholder))
	}
	if o.Default != "" {
		opts = append(opts, prompts.WithDefault(o.Default))
	}
	if o.Detail != "" {
		opts = append(opts, prompts.WithDetail(o.Detail))
	}
	if o.Secret {
		opts = append(opts, prompts.WithSecret())
	}
	if o.Int {
		opts = append(opts, prompts.WithValidators(validate.Int()), prompts.WithCoerce(prompts.IntValue))
	}

	fns, err := buildValidators(o.Validate)
	if err != nil {
		return nil, err
	}
	if len(fns) > 0 {
		opts = append(opts, prompts.WithValidators(fns...))
	}

	title := sd.Title
	return func() ports.Prompt {
		return prompts.NewInput(title, opts...)
	}, nil
}

func buildSelect(sd StepDef, multi bool) (ports.PromptFactory, error) {
	var o selectOptions
	if err := decode(sd.Options, &o); err != nil {
		return nil, err
	}
	if len(o.Choices) == 0 {
		return nil, fmt.Errorf("select needs at least one choice")
	}

	options := make([]prompts.Option, len(o.Choices))
	for i, c := range o.Choices {
		opt := prompts.Option{Label: c.Label, Description: c.Description, Value: c.Value}
		if c.Hotkey != "" {
			opt.Hotkey = []rune(c.Hotkey)[0]
		}
		options[i] = opt
	}

	var sopts []prompts.SelectOption
	if multi {
		sopts = append(sopts, prompts.WithMulti())
		if o.Min > 0 {
			sopts = append(sopts, prompts.WithMinSelected(o.Min))
		}
	}

	title := sd.Title
	return func() ports.Prompt {
		return prompts.NewSelect(title, options, sopts...)
	}, nil
}

func buildConfirm(sd StepDef) (ports.PromptFactory, error) {
	var o confirmOptions
	if err := decode(sd.Options, &o); err != nil {
		return nil, err
	}

	var copts []prompts.ConfirmOption
	if o.Default {
		copts = append(copts, prompts.WithConfirmDefault(true))
	}
	if o.StopOnNo {
		copts = append(copts, prompts.WithStopOnNo())
	}

	title := sd.Title
	return func() ports.Prompt {
		return prompts.NewConfirm(title, copts...)
	}, nil
}

func buildNote(sd StepDef) (ports.PromptFactory, error) {
	var o noteOptions
	if err := decode(sd.Options, &o); err != nil {
		return nil, err
	}

	title, body := sd.Title, o.Body
	return func() ports.Prompt {
		return prompts.NewNote(title, body)
	}, nil
}

// buildValidators compiles the validate list: bare names for flag rules,
// single-key maps for parameterized ones.
func buildValidators(rules []any) ([]validate.Func, error) {
	var fns []validate.Func
	for _, raw := range rules {
		switch v := raw.(type) {
		case string:
			fn, err := namedValidator(v)
			if err != nil {
				return nil, err
			}
			fns = append(fns, fn)
		case map[string]any:
			fn, err := paramValidator(v)
			if err != nil {
				return nil, err
			}
			fns = append(fns, fn)
		default:
			return nil, fmt.Errorf("validate rule must be a name or a map, got %T", raw)
		}
	}
	return fns, nil
}

func namedValidator(name string) (validate.Func, error) {
	switch name {
	case "required":
		return validate.Required(), nil
	case "int":
		return validate.Int(), nil
	}
	return nil, fmt.Errorf("unknown validator %q", name)
}

func paramValidator(m map[string]any) (validate.Func, error) {
	// matches carries an optional hint alongside the pattern.
	if p, ok := m["matches"]; ok {
		pattern, _ := p.(string)
		if pattern == "" {
			return nil, fmt.Errorf("matches needs a pattern")
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("matches: %w", err)
		}
		hint, _ := m["hint"].(string)
		if hint == "" {
			hint = fmt.Sprintf("must match %s", pattern)
		}
		return validate.Matches(pattern, hint), nil
	}

	if len(m) != 1 {
		return nil, fmt.Errorf("validator map needs exactly one rule, got %v", m)
	}

	for key, raw := range m {
		switch key {
		case "max_length":
			n, err := asInt(raw)
			if err != nil {
				return nil, fmt.Errorf("max_length: %w", err)
			}
			return validate.MaxLength(n), nil
		case "at_least":
			n, err := asInt(raw)
			if err != nil {
				return nil, fmt.Errorf("at_least: %w", err)
			}
			return validate.AtLeast(n), nil
		case "at_most":
			n, err := asInt(raw)
			if err != nil {
				return nil, fmt.Errorf("at_most: %w", err)
			}
			return validate.AtMost(n), nil
		case "one_of":
			var opts []string
			if err := decode(raw, &opts); err != nil {
				return nil, fmt.Errorf("one_of: %w", err)
			}
			return validate.OneOf(opts...), nil
		case "differs_from":
			id, _ := raw.(string)
			if id == "" {
				return nil, fmt.Errorf("differs_from needs a step id")
			}
			return validate.DiffersFrom(id), nil
		}
		return nil, fmt.Errorf("unknown validator %q", key)
	}
	return nil, fmt.Errorf("empty validator map")
}

func asInt(raw any) (int, error) {
	var n int
	if err := decode(raw, &n); err != nil {
		return 0, fmt.Errorf("expected a number, got %v", raw)
	}
	return n, nil
}

func decode(in, out any) error {
	return mapstructure.Decode(in, out)
}
