package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AmmannChristian/pwstrength/internal/config"
	"github.com/AmmannChristian/pwstrength/internal/service"
	"github.com/AmmannChristian/pwstrength/internal/strength"
	"github.com/AmmannChristian/pwstrength/internal/tui"
)

type options struct {
	specialChars string
	maxLength    int
	configPath   string
	jsonOut      bool
	outputFile   string
	quiet        bool
	batch        bool
	interactive  bool
}

// usageError marks failures caused by invalid arguments; they exit with 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// runCLI parses command-line arguments, reads one password (or one per line
// with --batch) from the terminal or stdin and reports its strength. It
// returns an exit code: 0 on success, 1 on input error, or 2 on argument
// validation failure.
func runCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(&options{})
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwcheck",
		Short: "Password strength checker",
		Long: "Scores a password by its character classes and length and flags\n" +
			"repeated or sequential runs. The password is read from the terminal\n" +
			"without echo, or from stdin when piped.",
		Example: "  pwcheck\n" +
			"  printf 'Tr0ub4dor&3' | pwcheck --json\n" +
			"  pwcheck --batch --quiet < passwords.txt\n" +
			"  pwcheck --tui",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.NoArgs(c, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runCheck(c, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&opts.specialChars, "special", strength.DefaultSpecialChars, "characters counted as special")
	flags.IntVar(&opts.maxLength, "max-length", service.DefaultMaxPasswordLength, "longest accepted password in characters")
	flags.StringVar(&opts.configPath, "config", config.DefaultFileConfigPath(), "path to TOML config file")
	flags.BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	flags.StringVar(&opts.outputFile, "output", "", "write JSON results to file")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "print only the verdict")
	flags.BoolVar(&opts.batch, "batch", false, "evaluate one password per input line")
	flags.BoolVar(&opts.interactive, "tui", false, "open the live strength form")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *options) error {
	fileCfg, err := config.LoadFileConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "special", &opts.specialChars, fileCfg.Check.SpecialChars)
	applyIntConfig(cmd, "max-length", &opts.maxLength, fileCfg.Check.MaxLength)

	if opts.maxLength < 1 || opts.maxLength > strength.MaxInputBytes {
		return usageError{fmt.Errorf("max-length must be 1-%d, got %d", strength.MaxInputBytes, opts.maxLength)}
	}
	if opts.interactive && opts.batch {
		return usageError{errors.New("--tui and --batch cannot be combined")}
	}

	svc := service.NewService(opts.specialChars, opts.maxLength)

	if opts.batch {
		return runBatch(cmd, opts, svc)
	}

	var analysis strength.Analysis
	if opts.interactive {
		analysis, err = runForm(cmd, svc)
		if err != nil {
			return err
		}
	} else {
		password, err := readPassword(cmd)
		if err != nil {
			return err
		}
		analysis, err = svc.Evaluate(password, "")
		if err != nil {
			return lengthError(svc)
		}
	}

	out := newOutput(analysis, svc.SpecialChars())
	switch {
	case opts.outputFile != "":
		if err := writeJSONFile(opts.outputFile, out); err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", opts.outputFile)
		}
	case opts.jsonOut:
		return writeJSON(cmd.OutOrStdout(), out)
	case opts.quiet:
		fmt.Fprintln(cmd.OutOrStdout(), analysis.Verdict)
	default:
		w := cmd.OutOrStdout()
		fmt.Fprint(w, tui.RenderReport(analysis, svc.SpecialChars()))
		fmt.Fprintln(w)
		fmt.Fprintln(w, analysis.Summary())
	}
	return nil
}

// readPassword prompts without echo when stdin is a terminal and otherwise
// reads the whole of stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("%w: %v", strength.ErrReadInput, err)
		}
		return string(data), nil
	}
	return strength.ReadPassword(in)
}

func runForm(cmd *cobra.Command, svc *service.StrengthService) (strength.Analysis, error) {
	model := tui.NewModel(strength.NewScorer(svc.SpecialChars()), svc.MaxLength())
	program := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	if _, err := program.Run(); err != nil {
		return strength.Analysis{}, fmt.Errorf("failed to run TUI: %w", err)
	}
	analysis, ok := model.Analysis()
	if !ok {
		return strength.Analysis{}, errors.New("aborted")
	}
	return analysis, nil
}

// runBatch evaluates each non-empty input line. Lines over the length limit
// are reported and make the command fail once all lines are processed.
func runBatch(cmd *cobra.Command, opts *options, svc *service.StrengthService) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 4096), strength.MaxInputBytes+1)

	w := cmd.OutOrStdout()
	var results []JSONOutput
	failed := 0
	line := 0
	for scanner.Scan() {
		line++
		password := scanner.Text()
		if password == "" {
			continue
		}

		analysis, err := svc.Evaluate(password, "")
		if err != nil {
			failed++
			msg := lengthError(svc).Error()
			results = append(results, JSONOutput{Version: version, Line: line, ErrorCode: 1, ErrorMessage: msg})
			if !opts.jsonOut && opts.outputFile == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %s\n", line, msg)
			}
			continue
		}

		out := newOutput(analysis, svc.SpecialChars())
		out.Line = line
		results = append(results, out)

		switch {
		case opts.jsonOut || opts.outputFile != "":
		case opts.quiet:
			fmt.Fprintln(w, analysis.Verdict)
		default:
			fmt.Fprintf(w, "%d: %s score %d\n", line, tui.RenderVerdict(analysis.Verdict), analysis.Score())
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d: %w", line+1, strength.ErrInputTooLarge)
		}
		return fmt.Errorf("%w: %v", strength.ErrReadInput, err)
	}

	switch {
	case opts.outputFile != "":
		if err := writeJSONFile(opts.outputFile, results); err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Fprintf(w, "Results written to %s\n", opts.outputFile)
		}
	case opts.jsonOut:
		if results == nil {
			results = []JSONOutput{}
		}
		if err := writeJSON(w, results); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d passwords rejected", failed, len(results))
	}
	return nil
}

func newOutput(a strength.Analysis, specialChars string) JSONOutput {
	return JSONOutput{
		Version:        version,
		Verdict:        a.Verdict.String(),
		Score:          a.Score(),
		Strength:       a.Strength,
		RunScore:       a.RunScore,
		RunDetected:    a.RunDetected(),
		Length:         a.Length,
		LowercaseCount: a.LowercaseCount,
		UppercaseCount: a.UppercaseCount,
		DigitCount:     a.DigitCount,
		SpecialCount:   a.SpecialCount,
		Diagnostics:    strength.Diagnose(a, specialChars),
	}
}

func lengthError(svc *service.StrengthService) error {
	return fmt.Errorf("password exceeds %d characters", svc.MaxLength())
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
