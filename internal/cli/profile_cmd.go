package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit your profile and skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showProfile(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show your profile and skills",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showProfile(cmd, app)
			},
		},
		newProfileUpdateCmd(app),
		newProfileSkillCmd(app),
	)

	return cmd
}

func showProfile(cmd *cobra.Command, app *App) error {
	ctx := context.Background()
	p, err := app.Profiles.Get(ctx, app.UserID)
	if err != nil {
		return err
	}
	skills, err := app.Profiles.Skills(ctx, app.UserID)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p, skills))
	return nil
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var name, bio, location, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; omitted flags keep their value",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profiles.Get(ctx, app.UserID)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.DisplayName = name
			}
			if flags.Changed("bio") {
				p.Bio = bio
			}
			if flags.Changed("location") {
				p.Location = location
			}
			if flags.Changed("avatar") {
				p.AvatarURL = avatar
			}

			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}
			return showProfile(cmd, app)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "About you")
	cmd.Flags().StringVar(&location, "location", "", "City or Remote")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")

	return cmd
}

func newProfileSkillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Manage the skills you teach and want to learn",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add teach|learn NAME",
			Short: "Add a skill",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return editSkill(cmd, app, args, app.Profiles.AddSkill)
			},
		},
		&cobra.Command{
			Use:     "remove teach|learn NAME",
			Aliases: []string{"rm"},
			Short:   "Remove a skill",
			Args:    cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return editSkill(cmd, app, args, app.Profiles.RemoveSkill)
			},
		},
		&cobra.Command{
			Use:   "available",
			Short: "List every skill anyone teaches or wants to learn",
			RunE: func(cmd *cobra.Command, args []string) error {
				skills, err := app.Profiles.AvailableSkills(context.Background())
				if err != nil {
					return err
				}
				if len(skills) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No skills listed yet."))
					return nil
				}
				for _, s := range skills {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			},
		},
	)

	return cmd
}

type skillEdit func(ctx context.Context, userID string, kind domain.SkillKind, name string) (*domain.SkillLists, error)

// editSkill applies edit to args of the form KIND NAME..., where the name
// may be given unquoted across several words.
func editSkill(cmd *cobra.Command, app *App, args []string, edit skillEdit) error {
	kind, err := domain.ParseSkillKind(args[0])
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	ctx := context.Background()
	if _, err := edit(ctx, app.UserID, kind, name); err != nil {
		return err
	}
	return showProfile(cmd, app)
}
