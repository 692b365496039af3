package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/domain"
)

// skillswapHuhTheme returns a huh theme matching the Gruvbox palette.
func skillswapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// draftFields is the string-typed mirror of a SessionDraft that huh binds to.
type draftFields struct {
	Skill       string
	Counterpart string
	Date        string
	Time        string
	Duration    string
	Mode        string
	Notes       string
}

func newDraftFields(d domain.SessionDraft) *draftFields {
	f := &draftFields{
		Skill:       d.Skill,
		Counterpart: d.Counterpart,
		Date:        d.Date,
		Time:        d.Time,
		Mode:        string(d.Mode),
		Notes:       d.Notes,
	}
	if d.DurationMin > 0 {
		f.Duration = strconv.Itoa(d.DurationMin)
	}
	return f
}

// Draft converts back. An unparseable duration becomes 0 so the booking
// default applies.
func (f *draftFields) Draft() domain.SessionDraft {
	minutes, _ := strconv.Atoi(strings.TrimSpace(f.Duration))
	return domain.SessionDraft{
		Skill:       f.Skill,
		Counterpart: f.Counterpart,
		Date:        f.Date,
		Time:        f.Time,
		DurationMin: minutes,
		Mode:        domain.DeliveryMode(f.Mode),
		Notes:       f.Notes,
	}
}

// scheduleForm collects the booking dialog fields. Values already set on
// fields are used as the starting input.
func scheduleForm(fields *draftFields, today time.Time) *huh.Form {
	slotOptions := make([]huh.Option[string], 0, len(booking.TimeSlots()))
	for _, slot := range booking.TimeSlots() {
		slotOptions = append(slotOptions, huh.NewOption(slot, slot))
	}
	if fields.Time == "" {
		fields.Time = slotOptions[0].Value
	}
	if fields.Mode == "" {
		fields.Mode = string(domain.ModeVideo)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Skill").
				Placeholder("React Development").
				Value(&fields.Skill).
				Validate(validateRequired("skill")),
			huh.NewInput().
				Title("With").
				Placeholder("Sarah Chen").
				Value(&fields.Counterpart).
				Validate(validateRequired("counterpart")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder(today.Format(domain.DateLayout)).
				Value(&fields.Date).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Time").
				Options(slotOptions...).
				Height(8).
				Value(&fields.Time),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(&fields.Duration).
				Validate(validateOptionalPositiveInt),
			huh.NewSelect[string]().
				Title("Mode").
				Options(
					huh.NewOption("Video call", string(domain.ModeVideo)),
					huh.NewOption("In person", string(domain.ModeInPerson)),
				).
				Value(&fields.Mode),
			huh.NewText().
				Title("Notes").
				Value(&fields.Notes),
		),
	).WithTheme(skillswapHuhTheme()).WithShowHelp(false)
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
