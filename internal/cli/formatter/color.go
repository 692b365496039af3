package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/skillswap/internal/booking"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// NoticeStyle maps a toast level to its color.
func NoticeStyle(level booking.NoticeLevel) lipgloss.Style {
	switch level {
	case booking.NoticeError:
		return StyleRed
	case booking.NoticeWarning:
		return StyleYellow
	case booking.NoticeSuccess:
		return StyleGreen
	default:
		return StyleDim
	}
}

// FormatNotices renders each toast on its own line, e.g. "✔ Session scheduled successfully!".
func FormatNotices(notices []booking.Notice) string {
	var b strings.Builder
	for _, n := range notices {
		mark := "●"
		switch n.Level {
		case booking.NoticeSuccess:
			mark = "✔"
		case booking.NoticeWarning:
			mark = "!"
		case booking.NoticeError:
			mark = "✖"
		}
		b.WriteString(NoticeStyle(n.Level).Render(mark+" "+n.Message) + "\n")
	}
	return b.String()
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
