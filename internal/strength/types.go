// Package strength provides the password strength heuristic: character-class
// counting, run detection over adjacent code points, a weighted strength
// formula and threshold-based verdict classification. Every evaluation is a
// pure function of its inputs and returns a fresh Analysis value.
package strength

import (
	"fmt"
	"math"
)

// DefaultSpecialChars is the special-character set used by the form hosts.
const DefaultSpecialChars = "~!@#$%&*^_+-."

// Weighting factors applied to each class count in the strength formula.
const (
	LowercaseWeight = 1.0
	UppercaseWeight = 1.2
	DigitWeight     = 1.3
	SpecialWeight   = 1.5
)

// Verdict thresholds. Each is an exclusive lower bound of its band.
const (
	WeakThreshold       = 20.0
	MediumThreshold     = 40.0
	StrongThreshold     = 150.0
	VeryStrongThreshold = 500.0
)

// RunThreshold is the run score at or below which a password is forced to
// VeryWeak.
const RunThreshold = 1.0

// Verdict is the qualitative strength band of a password.
type Verdict int

const (
	// VeryWeak is the lowest band; also the result of the run override.
	VeryWeak Verdict = iota
	// Weak is strength in (20, 40].
	Weak
	// Medium is strength in (40, 150].
	Medium
	// Strong is strength in (150, 500].
	Strong
	// VeryStrong is strength above 500.
	VeryStrong
)

// String returns the display label of the verdict.
func (v Verdict) String() string {
	switch v {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so verdicts encode as their
// labels in JSON output.
func (v Verdict) MarshalText() ([]byte, error) {
	if v < VeryWeak || v > VeryStrong {
		return nil, fmt.Errorf("unknown verdict %d", int(v))
	}
	return []byte(v.String()), nil
}

// Analysis is the outcome of a single evaluation. It is a plain value and is
// never modified after Evaluate returns it.
type Analysis struct {
	LowercaseCount int     // ASCII a-z
	UppercaseCount int     // ASCII A-Z
	DigitCount     int     // ASCII 0-9
	SpecialCount   int     // members of the caller's special set
	Length         int     // code points in the password
	RunScore       float64 // mean absolute difference of adjacent code points
	Strength       float64 // weighted score, 0 when the run override fired
	Verdict        Verdict
}

// RunDetected reports whether the run override decided the verdict, i.e. the
// password is too short to score or its characters form a run.
func (a Analysis) RunDetected() bool {
	return a.Length <= 1 || a.RunScore <= RunThreshold
}

// Score returns Strength rounded to the nearest integer for display.
func (a Analysis) Score() int {
	return int(math.Round(a.Strength))
}

// Classify maps a strength value to its verdict band.
func Classify(strength float64) Verdict {
	switch {
	case strength > VeryStrongThreshold:
		return VeryStrong
	case strength > StrongThreshold:
		return Strong
	case strength > MediumThreshold:
		return Medium
	case strength > WeakThreshold:
		return Weak
	default:
		return VeryWeak
	}
}
