package formatter

import (
	"strings"

	"github.com/alexanderramin/skillswap/internal/mentor"
)

// FormatChatReply renders a mentor answer with its source underneath.
func FormatChatReply(r *mentor.Reply) string {
	var b strings.Builder
	b.WriteString(StylePurple.Render("mentor") + Dim(" · "+r.Timestamp.Local().Format("15:04")) + "\n")
	b.WriteString(strings.TrimRight(r.Text, "\n") + "\n")
	if r.Source != "" && r.Source != mentor.SourceLLM {
		b.WriteString(Dim("(" + r.Source + " reply)") + "\n")
	}
	return b.String()
}

// FormatSuggestions lists starter questions.
func FormatSuggestions(questions []string) string {
	var b strings.Builder
	b.WriteString(Dim("Try asking:") + "\n")
	for _, q := range questions {
		b.WriteString("  " + StyleBlue.Render("› "+q) + "\n")
	}
	return b.String()
}
