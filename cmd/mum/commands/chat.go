package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mum/internal/app"
)

func (c *CLI) newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runChat(cmd)
		},
	}
	addUIFlag(cmd)
	return cmd
}

func (c *CLI) runChat(cmd *cobra.Command) error {
	mode, _ := cmd.Flags().GetString("ui")
	return c.app.Chat(cmd.Context(), app.ChatOptions{
		ConfigPath: c.configPath,
		UIMode:     mode,
	})
}

func addUIFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("ui", "u", "", "Frontend: auto, tui, or line (default: from mum.yaml)")
}
