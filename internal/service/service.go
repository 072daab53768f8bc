// Package service implements the business and transport layers of the
// password strength microservice. StrengthService applies request limits
// around the scorer, while GRPCServer exposes it as a gRPC API.
package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/AmmannChristian/pwstrength/internal/strength"
)

// DefaultMaxPasswordLength is used when NewService receives a non-positive
// limit.
const DefaultMaxPasswordLength = 1024

// MaxSpecialChars bounds a per-call special-character set, in characters.
const MaxSpecialChars = 256

// ErrSpecialCharsTooLong is returned when a per-call special set exceeds
// MaxSpecialChars.
var ErrSpecialCharsTooLong = errors.New("special character set too long")

// StrengthService is the business-logic layer for password evaluation. It
// holds a scorer compiled for the configured special-character set.
type StrengthService struct {
	scorer    *strength.Scorer
	maxLength int
}

// NewService creates a StrengthService for the given special-character set
// and maximum password length in characters.
func NewService(specialChars string, maxLength int) *StrengthService {
	if maxLength <= 0 {
		maxLength = DefaultMaxPasswordLength
	}
	return &StrengthService{
		scorer:    strength.NewScorer(specialChars),
		maxLength: maxLength,
	}
}

// SpecialChars returns the configured default special-character set.
func (s *StrengthService) SpecialChars() string {
	return s.scorer.SpecialChars()
}

// MaxLength returns the longest password accepted, in characters.
func (s *StrengthService) MaxLength() int {
	return s.maxLength
}

// Evaluate validates the password length and scores it. An empty
// specialChars selects the configured set; otherwise a scorer is compiled for
// this call only, provided the set is at most MaxSpecialChars long.
func (s *StrengthService) Evaluate(password, specialChars string) (strength.Analysis, error) {
	if n := utf8.RuneCountInString(specialChars); n > MaxSpecialChars {
		return strength.Analysis{}, fmt.Errorf("special set has %d characters, limit is %d: %w", n, MaxSpecialChars, ErrSpecialCharsTooLong)
	}
	if n := utf8.RuneCountInString(password); n > s.maxLength {
		return strength.Analysis{}, fmt.Errorf("password has %d characters, limit is %d: %w", n, s.maxLength, strength.ErrInputTooLarge)
	}

	scorer := s.scorer
	if specialChars != "" && specialChars != s.scorer.SpecialChars() {
		scorer = strength.NewScorer(specialChars)
	}
	return scorer.Evaluate(password), nil
}
