package strength

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Scorer evaluates passwords against a fixed special-character set. The
// compiled set is read-only, so a Scorer can be shared between goroutines.
type Scorer struct {
	specialChars string
	special      *regexp.Regexp // nil when the special set is empty
}

// NewScorer compiles specialChars into a character class. Every character of
// the set is taken literally, including ones that carry meaning inside a
// bracket expression such as '^', ']', '\' and '-'.
func NewScorer(specialChars string) *Scorer {
	s := &Scorer{specialChars: specialChars}
	if specialChars != "" {
		s.special = regexp.MustCompile("[" + escapeClass(specialChars) + "]")
	}
	return s
}

// SpecialChars returns the special-character set the scorer was built with.
func (s *Scorer) SpecialChars() string {
	return s.specialChars
}

// Evaluate scores password using a one-off scorer for specialChars.
func Evaluate(password, specialChars string) Analysis {
	return NewScorer(specialChars).Evaluate(password)
}

// Evaluate runs the heuristic on password. Class counts and length are always
// reported; Strength and the banded verdict are only computed once the run
// check passes, otherwise the verdict is VeryWeak and Strength is 0.
func (s *Scorer) Evaluate(password string) Analysis {
	a := Analysis{
		Length:   utf8.RuneCountInString(password),
		RunScore: detectRuns(password),
		Verdict:  VeryWeak,
	}

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			a.LowercaseCount++
		case r >= 'A' && r <= 'Z':
			a.UppercaseCount++
		case r >= '0' && r <= '9':
			a.DigitCount++
		}
	}
	if s.special != nil {
		a.SpecialCount = len(s.special.FindAllStringIndex(password, -1))
	}

	if a.RunDetected() {
		return a
	}

	a.Strength = weightedStrength(a.Length, a.LowercaseCount, a.UppercaseCount, a.DigitCount, a.SpecialCount)
	a.Verdict = Classify(a.Strength)
	return a
}

// detectRuns returns the mean absolute difference between adjacent code
// points. Repeated characters score 0, "abcde" scores 1, "aaazz" scores 6.25.
func detectRuns(password string) float64 {
	var (
		accum int64
		pairs int
		prev  rune
		first = true
	)
	for _, r := range password {
		if !first {
			d := int64(r) - int64(prev)
			if d < 0 {
				d = -d
			}
			accum += d
			pairs++
		}
		prev = r
		first = false
	}
	if pairs == 0 {
		return 0
	}
	return float64(accum) / float64(pairs)
}

// weightedStrength rewards length superlinearly and class diversity through
// a product of weighted counts, divided by (length/4 + 1) to flatten it.
func weightedStrength(length, lower, upper, digits, special int) float64 {
	l := float64(length)
	avg := l / 4
	diversity := (float64(lower)*LowercaseWeight + 1) *
		(float64(upper)*UppercaseWeight + 1) *
		(float64(digits)*DigitWeight + 1) *
		(float64(special)*SpecialWeight + 1)
	return l*(1+l/10) + diversity/(avg+1)
}

// escapeClass backslash-escapes every ASCII punctuation or control
// character so the result can sit between '[' and ']' unchanged in meaning.
func escapeClass(chars string) string {
	var b strings.Builder
	b.Grow(2 * len(chars))
	for _, r := range chars {
		if r < utf8.RuneSelf && !isASCIIAlnum(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// roundTo rounds v to n decimal places; used for display of run scores.
func roundTo(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
