package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const (
	version = "1.0.0"
)

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Version        string   `json:"version"`
	Line           int      `json:"line,omitempty"`
	Verdict        string   `json:"verdict,omitempty"`
	Score          int      `json:"score"`
	Strength       float64  `json:"strength"`
	RunScore       float64  `json:"run_score"`
	RunDetected    bool     `json:"run_detected"`
	Length         int      `json:"length"`
	LowercaseCount int      `json:"lowercase_count"`
	UppercaseCount int      `json:"uppercase_count"`
	DigitCount     int      `json:"digit_count"`
	SpecialCount   int      `json:"special_count"`
	Diagnostics    []string `json:"diagnostics,omitempty"`
	ErrorCode      int      `json:"error_code"`
	ErrorMessage   string   `json:"error_message,omitempty"`
}

func main() {
	os.Exit(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

func writeJSONFile(filename string, data interface{}) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := writeJSON(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
