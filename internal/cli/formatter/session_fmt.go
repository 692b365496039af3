package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// FormatSessionList renders sessions as a boxed table. now drives the WHEN column.
func FormatSessionList(title string, sessions []domain.Session, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions scheduled.") + "\n"
	}

	headers := []string{"ID", "SKILL", "WITH", "DATE", "TIME", "LENGTH", "MODE", "STATUS", "WHEN"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		when := ""
		if t, err := time.ParseInLocation(domain.DateLayout, s.Date, now.Location()); err == nil {
			when = Dim(RelativeDateFrom(t, now))
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Skill),
			s.Counterpart,
			HumanDate(s.Date),
			s.Time,
			FormatMinutes(s.DurationMin),
			ModeBadge(s.Mode),
			StatusPill(s.Status),
			when,
		})
	}
	return RenderBox(title, RenderTable(headers, rows)) + "\n"
}

// FormatSessionDetail renders one session with its notes.
func FormatSessionDetail(s domain.Session) string {
	var b strings.Builder
	b.WriteString(Bold(s.Skill) + Dim(" with ") + s.Counterpart + "\n")
	fmt.Fprintf(&b, "%s  %s at %s  %s\n", Dim("When"), HumanDate(s.Date), s.Time, Dim("("+FormatMinutes(s.DurationMin)+")"))
	fmt.Fprintf(&b, "%s  %s  %s\n", Dim("How "), ModeBadge(s.Mode), StatusPill(s.Status))
	if s.Notes != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Note"), s.Notes)
	}
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID  "), StyleDim.Render(s.ID))
	return RenderBox("Session", b.String()) + "\n"
}

// FormatTimeSlots lays the bookable times out in rows of six.
func FormatTimeSlots(slots []string) string {
	var b strings.Builder
	for i, slot := range slots {
		b.WriteString(StyleBlue.Render(slot))
		if (i+1)%6 == 0 || i == len(slots)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}
