package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/skillswap/internal/booking"
)

const calendarCellWidth = 14

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatCalendar renders a Sunday-first month grid. Each day shows up to
// its inline sessions followed by a "+N more" marker. selected, when
// non-zero, highlights that day.
func FormatCalendar(month time.Time, cells []*booking.DayCell, selected time.Time) string {
	cell := lipgloss.NewStyle().Width(calendarCellWidth)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(month.Format("January 2006")) + "\n\n")

	heads := make([]string, len(weekdayLabels))
	for i, d := range weekdayLabels {
		heads[i] = cell.Render(Dim(d))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, heads...) + "\n")

	for week := 0; week*7 < len(cells); week++ {
		cols := make([]string, 7)
		for i := 0; i < 7; i++ {
			cols[i] = cell.Render(renderDay(cells[week*7+i], selected))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n")
	}
	return b.String()
}

func renderDay(c *booking.DayCell, selected time.Time) string {
	if c == nil {
		return ""
	}
	day := StyleFg.Render(pad2(c.Day))
	switch {
	case !selected.IsZero() && sameDay(c.Date, selected):
		day = lipgloss.NewStyle().Reverse(true).Render(pad2(c.Day))
	case c.Today:
		day = StyleHeader.Render(pad2(c.Day))
	}

	lines := []string{day}
	for _, s := range c.Inline {
		lines = append(lines, StyleBlue.Render(Truncate(s.Time+" "+s.Skill, calendarCellWidth-1)))
	}
	if label := c.OverflowLabel(); label != "" {
		lines = append(lines, Dim(label))
	}
	return strings.Join(lines, "\n")
}

func pad2(n int) string { return fmt.Sprintf("%2d", n) }

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
