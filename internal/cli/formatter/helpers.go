package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative day such as "In 3d".
func RelativeDateFrom(t time.Time, now time.Time) string {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	ty, tm, td := t.Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, t.Location())
	days := int(math.Round(day.Sub(today).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// HumanDate formats a YYYY-MM-DD string as "Mon, Jun 2, 2025". Unparseable
// input is returned unchanged.
func HumanDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}

// StatusPill returns a colored indicator for a session status.
func StatusPill(status domain.SessionStatus) string {
	switch status {
	case domain.SessionConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.SessionPending:
		return StyleYellow.Render("○ Pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// ModeBadge renders the delivery mode.
func ModeBadge(mode domain.DeliveryMode) string {
	switch mode {
	case domain.ModeVideo:
		return StyleBlue.Render("▶ Video")
	case domain.ModeInPerson:
		return StylePurple.Render("⌂ In person")
	default:
		return StyleDim.Render(string(mode))
	}
}

// RarityBadge colors an achievement rarity.
func RarityBadge(r domain.Rarity) string {
	if r == "" {
		r = domain.RarityCommon
	}
	label := strings.ToUpper(string(r)[:1]) + string(r)[1:]
	switch r {
	case domain.RarityLegendary:
		return StyleHeader.Render(label)
	case domain.RarityEpic:
		return StylePurple.Render(label)
	case domain.RarityRare:
		return StyleBlue.Render(label)
	case domain.RarityUncommon:
		return StyleGreen.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Truncate shortens s to max runes, ending in "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max || max < 4 {
		return s
	}
	return string(r[:max-3]) + "..."
}
