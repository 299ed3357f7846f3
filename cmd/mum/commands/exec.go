package commands

import (
	"bufio"

	"github.com/spf13/cobra"
	"go.trai.ch/mum/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command...]",
		Short: "Run commands without a session",
		Long: "Run each argument as one command and print the responses.\n" +
			"Without arguments, commands are read from stdin, one per line.",
		Example: `  mum exec "todo buy milk" "deadline return book /by Sunday" list
  printf 'list\nmark 1\n' | mum exec`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd); err != nil {
					return err
				}
			}

			return c.app.Exec(cmd.Context(), lines, app.ExecOptions{
				ConfigPath: c.configPath,
			})
		},
	}
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read commands from stdin")
	}
	return lines, nil
}
