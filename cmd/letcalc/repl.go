package main

import (
	"fmt"
	"io"
	"letcalc/internal/calc"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// replCmd returns the definition of the repl command.
func (env *rootEnv) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.repl(cmd)
		},
	}
}

// parenDepth returns how many parentheses in line are left open.
func parenDepth(line string) int {
	return strings.Count(line, "(") - strings.Count(line, ")")
}

// repl reads expressions until exit or Ctrl+D. Every expression is
// evaluated on its own; bindings never carry over between inputs.
func (env *rootEnv) repl(cmd *cobra.Command) error {
	// Determine history file path (~/.letcalc_history)
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".letcalc_history")
	}

	prompt := resultColor.Sprint("letcalc> ")
	contPrompt := hintColor.Sprint("...      ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		bannerColor.Sprint("letcalc REPL"), hintColor.Sprint("(type 'exit' or Ctrl+D to quit)"))
	env.log.Info("repl started")

	var accumulated strings.Builder
	depth := 0

	for {
		// Update prompt based on multi-line state
		if depth > 0 {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if depth > 0 {
					// Cancel multi-line input
					accumulated.Reset()
					depth = 0
					continue
				}
				// Show hint instead of exiting
				fmt.Fprintf(rl.Stdout(), "\n%s\n", hintColor.Sprint("(use 'exit' or Ctrl+D to quit)"))
				continue
			}
			// EOF (Ctrl+D) or other error → exit
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		// Exit command
		if depth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		// Keep reading while parentheses are open
		depth += parenDepth(line)
		accumulated.WriteString(line)
		accumulated.WriteString("\n")
		if depth > 0 {
			continue
		}
		depth = 0

		source := accumulated.String()
		accumulated.Reset()

		// Skip empty input
		if strings.TrimSpace(source) == "" {
			continue
		}

		env.log.Infof("evaluating %q", source)
		value, tr, err := calc.EvaluateTrace(source)
		env.logTrace(tr)
		if err != nil {
			env.log.Errorf("%q: %v", source, err)
			printError(rl.Stderr(), err)
			continue
		}
		env.log.Infof("%q = %d", source, value)
		resultColor.Fprintln(rl.Stdout(), value)
	}
	env.log.Info("repl finished")
	return nil
}
