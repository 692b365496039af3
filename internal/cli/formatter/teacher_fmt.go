package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// FormatTeachers renders the directory as a table.
func FormatTeachers(teachers []*domain.Teacher) string {
	if len(teachers) == 0 {
		return Dim("No teachers match.") + "\n"
	}
	rows := make([][]string, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []string{
			Bold(t.Name),
			StyleBlue.Render(strings.Join(t.Skills, ", ")),
			StyleYellow.Render(fmt.Sprintf("★ %.1f", t.Rating)) + Dim(fmt.Sprintf(" (%d)", t.ReviewCount)),
			fmt.Sprintf("$%d/h", t.HourlyRate),
			t.Location,
			StyleGreen.Render(t.Availability),
		})
	}
	return RenderBox("Teachers", RenderTable(
		[]string{"NAME", "SKILLS", "RATING", "RATE", "LOCATION", "AVAILABILITY"}, rows,
	)) + "\n"
}

// FormatTeacher renders one teacher card.
func FormatTeacher(t *domain.Teacher) string {
	var b strings.Builder
	b.WriteString(Bold(t.Name) + "  " + StyleYellow.Render(fmt.Sprintf("★ %.1f", t.Rating)) + "\n")
	b.WriteString(StyleBlue.Render(strings.Join(t.Skills, " · ")) + "\n\n")
	b.WriteString(t.Bio + "\n\n")
	fmt.Fprintf(&b, "%s %s   %s %s\n", Dim("Rate"), fmt.Sprintf("$%d/h", t.HourlyRate), Dim("Location"), t.Location)
	fmt.Fprintf(&b, "%s %s   %s %s", Dim("Experience"), t.Experience, Dim("Responds"), t.ResponseTime)
	return RenderBox("Teacher", b.String()) + "\n"
}
