package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/gocmd/errors"
	"github.com/kbukum/gocmd/process"
)

func (c *cli) newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <path> [args...]",
		Short: "Run an executable directly with the given arguments",
		Example: `  gocmd run /bin/echo hello
  gocmd run --format json ls -la /tmp`,
		Args: requireArg("path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCommand(cmd, args[0], append([]string{}, args[1:]...))
		},
	}
	// Everything after the path belongs to the child.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (c *cli) newShCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sh <script...>",
		Short: "Run a script through the configured shell",
		Long: `Run a script as <shell> -c <script>. Multiple arguments are joined with
spaces. The script is passed to the shell unescaped.`,
		Example: `  gocmd sh 'echo out; echo err >&2; exit 3'`,
		Args:    requireArg("script"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCommand(cmd, strings.Join(args, " "), nil)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// runCommand runs command through the runner and renders the result. A nil
// args selects the shell.
func (c *cli) runCommand(cmd *cobra.Command, command string, args []string) error {
	res, err := c.runner.Run(cmd.Context(), command, args)
	if err != nil {
		return err
	}

	rep := report{Command: command, Args: args, Mode: process.ModeFor(args), Result: res}
	if err := c.render.result(rep); err != nil {
		return errors.Internal(err)
	}
	if !res.Success() {
		return &exitStatus{code: res.ExitCode}
	}
	return nil
}

func requireArg(field string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.MissingField(field)
		}
		return nil
	}
}
