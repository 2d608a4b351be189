package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// runCmd returns the definition of the run command.
func (env *rootEnv) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate every line of a file.",
		Long: `Evaluate every line of a file as an independent expression and
print one result per line. Blank lines and lines starting with # are skipped.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "cannot read file %s", args[0])
			}
			defer f.Close()
			return env.batch(cmd, f, args[0])
		},
	}
}
