package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/skillswap/internal/cli/formatter"
)

func newAchievementsCmd(app *App) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		ov, err := app.Achievements.Overview(context.Background(), app.UserID)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievementOverview(ov))
		return nil
	}

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show level, points and badges",
		RunE:    show,
	}

	cmd.AddCommand(
		&cobra.Command{Use: "show", Short: "Show level, points and badges", RunE: show},
		newAchievementAwardCmd(app),
	)

	return cmd
}

func newAchievementAwardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "award ID",
		Short: "Record an achievement as earned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			earned, err := app.Achievements.Award(context.Background(), app.UserID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(earned.AchievementID),
				formatter.Dim("earned "+earned.EarnedAt.Local().Format("Jan 2, 2006")),
			)
			return nil
		},
	}
}
