package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmmannChristian/pwstrength/internal/strength"
)

func TestNewService(t *testing.T) {
	svc := NewService(strength.DefaultSpecialChars, 64)

	assert.NotNil(t, svc)
	assert.NotNil(t, svc.scorer)
	assert.Equal(t, strength.DefaultSpecialChars, svc.SpecialChars())
	assert.Equal(t, 64, svc.MaxLength())
}

func TestNewService_DefaultMaxLength(t *testing.T) {
	svc := NewService(strength.DefaultSpecialChars, 0)
	assert.Equal(t, DefaultMaxPasswordLength, svc.MaxLength())
}

func TestService_Evaluate(t *testing.T) {
	svc := NewService(strength.DefaultSpecialChars, 64)

	a, err := svc.Evaluate("Password1!", "")
	require.NoError(t, err)
	assert.Equal(t, strength.Medium, a.Verdict)
	assert.Equal(t, 1, a.SpecialCount)
}

func TestService_Evaluate_OverridesSpecialChars(t *testing.T) {
	svc := NewService(strength.DefaultSpecialChars, 64)

	a, err := svc.Evaluate("Password1?", "?")
	require.NoError(t, err)
	assert.Equal(t, 1, a.SpecialCount)

	a, err = svc.Evaluate("Password1?", "")
	require.NoError(t, err)
	assert.Equal(t, 0, a.SpecialCount)
}

func TestService_Evaluate_TooLong(t *testing.T) {
	svc := NewService(strength.DefaultSpecialChars, 8)

	_, err := svc.Evaluate(strings.Repeat("x", 9), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, strength.ErrInputTooLarge)
	assert.Contains(t, err.Error(), "limit is 8")
	assert.NotContains(t, err.Error(), "xxxxxxxxx")

	// Length is counted in characters, not bytes.
	_, err = svc.Evaluate(strings.Repeat("ü", 8), "")
	assert.NoError(t, err)
}

func TestService_Evaluate_SpecialCharsTooLong(t *testing.T) {
	svc := NewService(strength.DefaultSpecialChars, 64)

	_, err := svc.Evaluate("Password1!", strings.Repeat("!", MaxSpecialChars+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecialCharsTooLong)
	assert.NotErrorIs(t, err, strength.ErrInputTooLarge)

	a, err := svc.Evaluate("Password1!", strings.Repeat("!", MaxSpecialChars))
	require.NoError(t, err)
	assert.Equal(t, 1, a.SpecialCount)

	// Counted in characters, not bytes.
	_, err = svc.Evaluate("Password1!", strings.Repeat("€", MaxSpecialChars))
	assert.NoError(t, err)
}
