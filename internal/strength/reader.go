package strength

import (
	"fmt"
	"io"
	"strings"
)

// MaxInputBytes bounds how much EvaluateReader will read.
const MaxInputBytes = 64 * 1024

// EvaluateReader reads a single password from r and evaluates it. One
// trailing "\n" or "\r\n" is dropped so piped input scores the same as typed
// input; any other whitespace is part of the password.
func EvaluateReader(r io.Reader, specialChars string) (Analysis, error) {
	password, err := ReadPassword(r)
	if err != nil {
		return Analysis{}, err
	}
	return Evaluate(password, specialChars), nil
}

// ReadPassword reads at most MaxInputBytes from r and strips a single line
// terminator.
func ReadPassword(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputBytes+1))
	if err != nil {
		return "", newError("ReadPassword", ErrReadInput, err.Error())
	}
	if len(data) > MaxInputBytes {
		return "", newError("ReadPassword", ErrInputTooLarge, fmt.Sprintf("limit is %d bytes", MaxInputBytes))
	}
	return TrimLineEnding(string(data)), nil
}

// TrimLineEnding removes one trailing "\n" or "\r\n".
func TrimLineEnding(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
