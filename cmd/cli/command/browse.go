package command

import (
	"movie-review/internal/client"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive movie browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		defer log.Sync()

		app := client.NewApp(newAPI(), cmd.InOrStdin(), cmd.OutOrStdout(), log)
		return app.Run(cmd.Context())
	},
}
