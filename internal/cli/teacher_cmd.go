package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/domain"
)

func newTeacherCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teacher",
		Aliases: []string{"teachers"},
		Short:   "Browse the teacher directory or become a teacher",
	}

	cmd.AddCommand(
		newTeacherListCmd(app),
		newTeacherBecomeCmd(app),
	)

	return cmd
}

func newTeacherListCmd(app *App) *cobra.Command {
	var query, skill string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teachers, best rated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			teachers, err := app.Teachers.Search(context.Background(), query, skill)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeachers(teachers))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "Fuzzy match on name, skills or bio")
	cmd.Flags().StringVar(&skill, "skill", "", "Only teachers offering this skill")

	return cmd
}

func newTeacherBecomeCmd(app *App) *cobra.Command {
	var application domain.TeacherApplication
	var name string

	cmd := &cobra.Command{
		Use:   "become",
		Short: "List yourself in the teacher directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if name == "" {
				if p, err := app.Profiles.Get(ctx, app.UserID); err == nil {
					name = p.DisplayName
				}
			}

			t, err := app.Teachers.Become(ctx, app.UserID, name, application)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeacher(t))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&application.Skills, "skill", nil, "Skill you teach (repeatable)")
	cmd.Flags().IntVar(&application.HourlyRate, "rate", 0, "Hourly rate in dollars")
	cmd.Flags().StringVar(&application.Bio, "bio", "", "Short introduction")
	cmd.Flags().StringVar(&application.Location, "location", "", "Where you teach (default Remote)")
	cmd.Flags().StringVar(&application.Experience, "experience", "", "Years of experience")
	cmd.Flags().StringVar(&name, "name", "", "Directory name (default: profile display name)")

	return cmd
}
