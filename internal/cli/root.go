package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "skillswap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.UserID == "" {
		app.UserID = app.Config.User
	}

	root := &cobra.Command{
		Use:           "skillswap",
		Short:         "Peer-to-peer skill exchange: sessions, achievements and a learning mentor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(app.UserID) == "" {
				return fmt.Errorf("no user selected: pass --user or set SKILLSWAP_USER")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&app.UserID, "user", "u", app.UserID, "Acting user ID")

	root.AddCommand(
		newSessionCmd(app),
		newAchievementsCmd(app),
		newTeacherCmd(app),
		newProfileCmd(app),
		newChatCmd(app),
		newServeCmd(app),
	)

	return root
}
