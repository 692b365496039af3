package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillswap/internal/service"
)

var achievementGlyphs = map[string]string{
	"book-open": "📖",
	"users":     "👥",
	"star":      "★",
	"crown":     "♛",
	"trophy":    "🏆",
}

// FormatAchievementOverview renders level progress, stats and the catalog.
func FormatAchievementOverview(ov *service.AchievementOverview) string {
	var b strings.Builder

	s := ov.Summary
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		Dim("Level"), Bold(fmt.Sprintf("%d", s.Level)),
		Dim("Points"), Bold(fmt.Sprintf("%d", s.TotalPoints)),
	)
	b.WriteString(RenderProgress(s.ProgressPct/100, 30))
	fmt.Fprintf(&b, "  %s\n\n", Dim(fmt.Sprintf("%d / %d to level %d", s.TotalPoints-s.CurrentLevelPoints, s.NextLevelPoints-s.CurrentLevelPoints, s.Level+1)))

	st := ov.Stats
	b.WriteString(RenderTable(
		[]string{"SESSIONS", "TEACHING", "LEARNING", "RATING"},
		[][]string{{
			fmt.Sprintf("%d", st.SessionsBooked),
			fmt.Sprintf("%d", st.SkillsTaught),
			fmt.Sprintf("%d", st.SkillsLearned),
			fmt.Sprintf("%.1f", st.Rating),
		}},
	))
	b.WriteString("\n")

	if len(ov.Achievements) == 0 {
		b.WriteString(Dim("No achievements available."))
		return RenderBox("Achievements", b.String()) + "\n"
	}

	rows := make([][]string, 0, len(ov.Achievements))
	for _, a := range ov.Achievements {
		mark := Dim("○")
		earned := Dim("-")
		name := Dim(a.Name)
		if a.Earned {
			mark = StyleGreen.Render("✔")
			name = Bold(a.Name)
			if a.EarnedAt != nil {
				earned = a.EarnedAt.Format("Jan 2, 2006")
			}
		}
		rows = append(rows, []string{
			mark,
			glyph(a.Icon),
			name,
			Truncate(a.Description, 40),
			RarityBadge(a.Rarity),
			fmt.Sprintf("%d pts", a.Points),
			earned,
			Dim(a.ID),
		})
	}
	b.WriteString(RenderTable([]string{"", "", "ACHIEVEMENT", "DESCRIPTION", "RARITY", "POINTS", "EARNED", "ID"}, rows))
	fmt.Fprintf(&b, "\n%s", Dim(fmt.Sprintf("%d of %d earned", s.Earned, len(ov.Achievements))))
	return RenderBox("Achievements", b.String()) + "\n"
}

func glyph(icon string) string {
	if g, ok := achievementGlyphs[icon]; ok {
		return g
	}
	return achievementGlyphs["trophy"]
}
