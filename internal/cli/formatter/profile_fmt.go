package formatter

import (
	"strings"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// FormatProfile renders the profile with both skill lists.
func FormatProfile(p *domain.Profile, skills *domain.SkillLists) string {
	var b strings.Builder
	name := p.DisplayName
	if name == "" {
		name = Dim("(no display name)")
	} else {
		name = Bold(name)
	}
	b.WriteString(name + Dim("  "+p.UserID) + "\n")
	if p.Location != "" {
		b.WriteString(Dim(p.Location) + "\n")
	}
	if p.Bio != "" {
		b.WriteString("\n" + p.Bio + "\n")
	}
	b.WriteString("\n" + Header("Teaching") + "\n" + skillLine(skills.Teach) + "\n")
	b.WriteString("\n" + Header("Learning") + "\n" + skillLine(skills.Learn))
	return RenderBox("Profile", b.String()) + "\n"
}

func skillLine(skills []string) string {
	if len(skills) == 0 {
		return Dim("none yet")
	}
	return StyleBlue.Render(strings.Join(skills, " · "))
}
