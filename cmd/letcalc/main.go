// Command letcalc evaluates prefix-notation arithmetic expressions with
// let bindings.
//
// Usage:
//
//	letcalc [-v level] <expression>    Print the integer value of an expression
//	letcalc                            REPL on a terminal, else evaluate stdin line by line
//	letcalc tokens <expression>        Print tokens
//	letcalc tokens <expression> --json Print tokens as JSON
//	letcalc parse  <expression>        Print the expression tree as JSON
//	letcalc run    <file>              Evaluate every line of a file
//	letcalc repl                       Start interactive REPL
//
// The -v/--verbose level (debug, info, error or off) controls what is
// appended to logs/calculator.log. It may appear before or after the
// expression.
package main

import (
	"errors"
	"fmt"
	"io"
	"letcalc/internal/applog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status:
// 0 on success, 1 when an expression or file failed, 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &rootEnv{}
	cmd := env.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if cerr := env.close(); cerr != nil {
		fmt.Fprintf(stderr, "error: closing log: %v\n", cerr)
	}

	var code exitCode
	var usage usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &code):
		return int(code)
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "error: %v\n", usage.err)
		fmt.Fprint(stderr, cmd.UsageString())
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

// exitCode is returned by commands that already reported their failure.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

// usageError marks a bad command line.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// rootEnv holds the flags shared by every command and the logger built
// from them.
type rootEnv struct {
	verbose string
	logDir  string
	logFile string
	noColor bool

	log *applog.Logger
}

func (env *rootEnv) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letcalc [expression]",
		Short: "Evaluate prefix arithmetic expressions with let bindings.",
		Long: `Evaluate prefix arithmetic expressions with let bindings, e.g.

	letcalc "let(a, 5, let(b, mult(a, 10), add(b, a)))"

Operations are let, add, sub, mult and div. Results are truncated to
32-bit integers. Without an expression, a REPL is started when stdin
is a terminal; otherwise every line of stdin is evaluated.`,
		Args:              usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: env.setup,
		RunE:              env.runRoot,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := cmd.PersistentFlags()
	flags.StringVarP(&env.verbose, "verbose", "v", "error", "log verbosity: debug, info, error or off")
	flags.StringVar(&env.logDir, "log-dir", applog.DefaultDir, "directory of the log file")
	flags.StringVar(&env.logFile, "log-file", applog.DefaultFile, "name of the log file")
	flags.BoolVar(&env.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		env.tokensCmd(),
		env.parseCmd(),
		env.runCmd(),
		env.replCmd(),
	)
	return cmd
}

// setup validates the shared flags and opens the log.
func (env *rootEnv) setup(cmd *cobra.Command, _ []string) error {
	level, err := applog.ParseLevel(env.verbose)
	if err != nil {
		return usageError{err}
	}
	if env.noColor {
		color.NoColor = true
	}
	log, err := applog.New(applog.Options{Dir: env.logDir, File: env.logFile, Level: level})
	if err != nil {
		return err
	}
	env.log = log
	env.log.Debugf("command %q, verbosity %s, log file %s", cmd.CommandPath(), level, env.log.Path())
	return nil
}

func (env *rootEnv) close() error {
	if env.log == nil {
		return nil
	}
	return env.log.Close()
}

func (env *rootEnv) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return env.evalOne(cmd, args[0])
	}
	if isTerminal(cmd.InOrStdin()) {
		return env.repl(cmd)
	}
	return env.batch(cmd, cmd.InOrStdin(), "<stdin>")
}
