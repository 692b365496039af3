package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sessions"},
		Short:   "Book, list and cancel learning sessions",
	}

	cmd.AddCommand(
		newSessionScheduleCmd(app),
		newSessionListCmd(app),
		newSessionCancelCmd(app),
		newSessionDayCmd(app),
		newSessionCalendarCmd(app),
		newSessionSlotsCmd(app),
	)

	return cmd
}

func newSessionScheduleCmd(app *App) *cobra.Command {
	var draft domain.SessionDraft
	var noPrompt bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a new session",
		Example: `  skillswap session schedule --skill "React Development" --with "Sarah Chen" \
      --date 2026-11-03 --time 14:00 --duration 90 --mode video`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !noPrompt && app.interactive() && !draftComplete(draft) {
				fields := newDraftFields(draft)
				if err := scheduleForm(fields, app.now()).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Booking cancelled."))
						return nil
					}
					return err
				}
				draft = fields.Draft()
			}

			res, err := app.Bookings.Schedule(ctx, app.UserID, draft)
			writeNotices(cmd.OutOrStdout(), res.Notices)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionDetail(*res.Session))
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Skill, "skill", "", "Skill to practise")
	cmd.Flags().StringVar(&draft.Counterpart, "with", "", "Teacher or learner you are meeting")
	cmd.Flags().StringVar(&draft.Date, "date", "", "Session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.Time, "time", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&draft.DurationMin, "duration", 0, "Duration in minutes (default from config)")
	cmd.Flags().Var(modeFlag{&draft.Mode}, "mode", "Delivery mode: video or in-person")
	cmd.Flags().StringVar(&draft.Notes, "notes", "", "Notes for the session")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Never open the interactive form")

	return cmd
}

func draftComplete(d domain.SessionDraft) bool {
	for _, v := range []string{d.Skill, d.Counterpart, d.Date, d.Time} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func newSessionListCmd(app *App) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Bookings.List(context.Background(), app.UserID, upcoming)
			writeNotices(cmd.OutOrStdout(), res.Notices)

			title := "All Sessions"
			if upcoming {
				title = "Upcoming Sessions"
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(title, res.Sessions, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only sessions that have not started yet")

	return cmd
}

func newSessionCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Bookings.Cancel(context.Background(), app.UserID, args[0])
			writeNotices(cmd.OutOrStdout(), res.Notices)
			if err != nil {
				return err
			}
			if !res.Removed {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No session with ID "+args[0]+" was booked."))
			}
			return nil
		},
	}
}

func newSessionDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day DATE",
		Short: "Show sessions on a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDay(args[0])
			if err != nil {
				return err
			}
			res := app.Bookings.OnDate(context.Background(), app.UserID, date)
			writeNotices(cmd.OutOrStdout(), res.Notices)
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatSessionList(formatter.HumanDate(args[0]), res.Sessions, app.now()))
			return nil
		},
	}
}

func newSessionCalendarCmd(app *App) *cobra.Command {
	var month time.Time
	var interactive bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month.IsZero() {
				month = app.now()
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--tui needs an interactive terminal")
				}
				m := newCalendarModel(context.Background(), app, month)
				_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
				return err
			}

			view := app.Bookings.Calendar(context.Background(), app.UserID, month)
			writeNotices(cmd.OutOrStdout(), view.Notices)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(view.Month, view.Cells, time.Time{}))
			return nil
		},
	}

	cmd.Flags().Var(monthFlag{&month}, "month", "Month to show (YYYY-MM)")
	cmd.Flags().BoolVar(&interactive, "tui", false, "Browse the calendar interactively")

	return cmd
}

func newSessionSlotsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List bookable start times",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeSlots(booking.TimeSlots()))
			return nil
		},
	}
}

func writeNotices(w io.Writer, notices []booking.Notice) {
	if len(notices) == 0 {
		return
	}
	fmt.Fprint(w, formatter.FormatNotices(notices))
}
