package strength

import (
	"fmt"
	"strings"
)

// Diagnostic messages shown below the verdict. The special-character message
// is completed with the active set.
const (
	MsgNoUppercase = "no uppercase letters"
	MsgNoDigit     = "no digits"
	MsgNoSpecial   = "no special characters"
	MsgRunDetected = "repeated or sequential characters (e.g. 'aaaa', 'abcde', '1234')"
)

// Diagnose lists what the password is missing: one line per absent class
// (uppercase, digit, special) and one line when the run override fired.
// Lowercase is not reported. A nil slice means there is nothing to report.
func Diagnose(a Analysis, specialChars string) []string {
	var msgs []string
	if a.UppercaseCount == 0 {
		msgs = append(msgs, MsgNoUppercase)
	}
	if a.DigitCount == 0 {
		msgs = append(msgs, MsgNoDigit)
	}
	if a.SpecialCount == 0 {
		if specialChars != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", MsgNoSpecial, specialChars))
		} else {
			msgs = append(msgs, MsgNoSpecial)
		}
	}
	if a.RunDetected() {
		msgs = append(msgs, MsgRunDetected)
	}
	return msgs
}

// Summary renders the per-class counts as a small aligned block.
func (a Analysis) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lowercase : %d\n", a.LowercaseCount)
	fmt.Fprintf(&b, "uppercase : %d\n", a.UppercaseCount)
	fmt.Fprintf(&b, "digits    : %d\n", a.DigitCount)
	fmt.Fprintf(&b, "special   : %d\n", a.SpecialCount)
	fmt.Fprintf(&b, "length    : %d\n", a.Length)
	fmt.Fprintf(&b, "run score : %g", roundTo(a.RunScore, 2))
	return b.String()
}
