package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
)

// Required rejects empty (or whitespace-only) input.
func Required() Func {
	return func(value string, _ domain.Answers) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("a value is required")
		}
		return nil
	}
}

// MaxLength caps the input at n characters.
func MaxLength(n int) Func {
	return func(value string, _ domain.Answers) error {
		if len([]rune(value)) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}

// Int requires the input to parse as an integer.
func Int() Func {
	return func(value string, _ domain.Answers) error {
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("must be a whole number")
		}
		return nil
	}
}

// AtLeast requires an integer input >= min.
func AtLeast(min int) Func {
	return func(value string, _ domain.Answers) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("must be a whole number")
		}
		if n < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}

// AtMost requires an integer input <= max.
func AtMost(max int) Func {
	return func(value string, _ domain.Answers) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("must be a whole number")
		}
		if n > max {
			return fmt.Errorf("must be at most %d", max)
		}
		return nil
	}
}

// OneOf requires the input to match one of the given options exactly.
func OneOf(options ...string) Func {
	return func(value string, _ domain.Answers) error {
		for _, opt := range options {
			if value == opt {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(options, ", "))
	}
}

// Matches requires the input to match pattern. hint is the message shown on
// failure; the raw regexp would mean nothing to the person typing.
// The pattern is compiled once, at chain declaration time.
func Matches(pattern, hint string) Func {
	re := regexp.MustCompile(pattern)
	return func(value string, _ domain.Answers) error {
		if !re.MatchString(value) {
			return fmt.Errorf("%s", hint)
		}
		return nil
	}
}

// DiffersFrom rejects input equal to the answer previously recorded for
// stepID. Steps without a recorded answer never conflict.
func DiffersFrom(stepID string) Func {
	return func(value string, prior domain.Answers) error {
		if prior.Has(stepID) && prior.String(stepID) == value {
			return fmt.Errorf("must differ from your %q answer", stepID)
		}
		return nil
	}
}
