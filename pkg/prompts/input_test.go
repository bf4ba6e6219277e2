package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/validate"
)

func typeString(p *Input, s string) {
	for _, r := range s {
		p.HandleKey(domain.Rune(r))
	}
}

func TestInput_TypingAndCursor(t *testing.T) {
	p := NewInput("Name?")
	typeString(p, "Ana")

	vm := p.View()
	assert.Equal(t, []string{"Ana"}, vm.Body)
	assert.Equal(t, 3, vm.Cursor.Col)

	// Insert in the middle.
	p.HandleKey(domain.KeyEvent{Key: domain.KeyLeft})
	p.HandleKey(domain.KeyEvent{Key: domain.KeyLeft})
	typeString(p, "n")
	assert.Equal(t, []string{"Anna"}, p.View().Body)

	// Home / End.
	p.HandleKey(domain.KeyEvent{Key: domain.KeyHome})
	assert.Equal(t, 0, p.View().Cursor.Col)
	p.HandleKey(domain.KeyEvent{Key: domain.KeyEnd})
	assert.Equal(t, 4, p.View().Cursor.Col)
}

func TestInput_BackspaceAndDelete(t *testing.T) {
	p := NewInput("Name?")
	typeString(p, "Anna")

	p.HandleKey(domain.KeyEvent{Key: domain.KeyBackspace})
	assert.Equal(t, []string{"Ann"}, p.View().Body)

	p.HandleKey(domain.KeyEvent{Key: domain.KeyHome})
	p.HandleKey(domain.KeyEvent{Key: domain.KeyDelete})
	assert.Equal(t, []string{"nn"}, p.View().Body)

	// Backspace at the start is a no-op.
	p.HandleKey(domain.KeyEvent{Key: domain.KeyBackspace})
	assert.Equal(t, []string{"nn"}, p.View().Body)
}

func TestInput_UnsupportedKeysAreIgnored(t *testing.T) {
	p := NewInput("Name?")
	for _, k := range []domain.Key{domain.KeyUp, domain.KeyDown, domain.KeyTab} {
		assert.Equal(t, domain.ActionContinue, p.HandleKey(domain.KeyEvent{Key: k}))
	}
	assert.Equal(t, []string{""}, p.View().Body)
}

func TestInput_SubmitActions(t *testing.T) {
	p := NewInput("Name?")
	assert.Equal(t, domain.ActionSubmit, p.HandleKey(domain.KeyEvent{Key: domain.KeyEnter}))
	assert.Equal(t, domain.ActionBack, p.HandleKey(domain.KeyEvent{Key: domain.KeyEsc}))
	assert.Equal(t, domain.ActionAbort, p.HandleKey(domain.KeyEvent{Key: domain.KeyCtrlC}))
}

func TestInput_ValidationFailurePreservesBuffer(t *testing.T) {
	p := NewInput("Age?", WithValidators(validate.AtLeast(0)), WithCoerce(IntValue))
	typeString(p, "-5")

	_, err := p.Submit(nil)
	require.Error(t, err)

	vm := p.View()
	assert.Equal(t, domain.PromptWarning, vm.Status)
	assert.Equal(t, "must be at least 0", vm.Err)
	assert.Equal(t, []string{"-5"}, vm.Body, "buffer survives a rejected submit")

	// Correct in place and resubmit.
	p.HandleKey(domain.KeyEvent{Key: domain.KeyHome})
	p.HandleKey(domain.KeyEvent{Key: domain.KeyDelete})
	typeString(p, "1")

	v, err := p.Submit(nil)
	require.NoError(t, err)
	assert.Equal(t, 15, v)
	assert.Equal(t, domain.PromptActive, p.View().Status)
	assert.Empty(t, p.View().Err)
}

func TestInput_CoerceInt(t *testing.T) {
	p := NewInput("Age?", WithValidators(validate.Int()), WithCoerce(IntValue))
	typeString(p, " 16 ")

	v, err := p.Submit(nil)
	require.NoError(t, err)
	assert.Equal(t, 16, v)
}

func TestInput_Secret(t *testing.T) {
	p := NewInput("Password?", WithSecret())
	typeString(p, "hunter2")

	vm := p.View()
	assert.Equal(t, []string{"•••••••"}, vm.Body)
	assert.Equal(t, "..currently 7 characters", vm.Detail)

	_, err := p.Submit(nil)
	require.NoError(t, err)
	assert.Equal(t, "•••••••", p.Summary(), "summary never reveals the secret")
}

func TestInput_Prefill(t *testing.T) {
	p := NewInput("Name?")
	p.Prefill("Ana")

	vm := p.View()
	assert.Equal(t, []string{"Ana"}, vm.Body)
	assert.Equal(t, 3, vm.Cursor.Col, "cursor lands at the end for editing")
}

func TestInput_Placeholder(t *testing.T) {
	p := NewInput("Name?", WithPlaceholder("e.g. Ana"))
	assert.Equal(t, []string{"e.g. Ana"}, p.View().Body)

	typeString(p, "B")
	assert.Equal(t, []string{"B"}, p.View().Body)
}

func TestInput_ValidatorsSeePriorAnswers(t *testing.T) {
	p := NewInput("Confirm name?", WithValidators(validate.DiffersFrom("name")))
	typeString(p, "Ana")

	_, err := p.Submit(domain.Answers{"name": "Ana"})
	require.Error(t, err)
}

func TestInput_ValidatorsSeeTrimmedValue(t *testing.T) {
	// Trailing whitespace must not slip a duplicate past DiffersFrom: the
	// stored answer is trimmed, so the check runs on the trimmed string too.
	p := NewInput("Confirm name?", WithValidators(validate.DiffersFrom("name")))
	typeString(p, "Ana ")

	_, err := p.Submit(domain.Answers{"name": "Ana"})
	require.Error(t, err)
}
