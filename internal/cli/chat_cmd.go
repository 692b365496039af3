package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/mentor"
)

func newChatCmd(app *App) *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "chat [MESSAGE...]",
		Short: "Ask the AI learning mentor",
		Long: `Ask the AI learning mentor a question. Without a message the mentor
greets you and suggests questions; in a terminal it then keeps reading
questions until "exit" or end of input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if history {
				writeTranscript(cmd, app.conversation().Turns())
				return nil
			}

			if len(args) > 0 {
				return askMentor(ctx, cmd, app, strings.Join(args, " "))
			}

			fmt.Fprint(out, formatter.FormatChatReply(&mentor.Reply{
				Text:      mentor.Greeting,
				Timestamp: app.now(),
			}))
			fmt.Fprint(out, formatter.FormatSuggestions(mentor.SuggestedQuestions))
			if !app.interactive() {
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, formatter.StyleHeader.Render("› "))
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				}
				if err := askMentor(ctx, cmd, app, line); err != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Print this session's transcript")

	return cmd
}

// conversation returns the acting user's transcript, or a throwaway one
// when the App keeps none.
func (a *App) conversation() *mentor.Conversation {
	if a.Transcripts == nil {
		return mentor.NewConversation(a.now())
	}
	return a.Transcripts.For(a.UserID)
}

func askMentor(ctx context.Context, cmd *cobra.Command, app *App, message string) error {
	stop := func() {}
	if app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Thinking...")
	}
	reply, err := app.conversation().Send(ctx, app.Mentor, app.UserID, message, app.now())
	stop()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChatReply(reply))
	return nil
}

func writeTranscript(cmd *cobra.Command, turns []domain.ChatMessage) {
	out := cmd.OutOrStdout()
	for _, t := range turns {
		if t.Role == domain.RoleUser {
			fmt.Fprintf(out, "%s %s\n", formatter.StyleHeader.Render("you"), t.Content)
			continue
		}
		fmt.Fprint(out, formatter.FormatChatReply(&mentor.Reply{Text: t.Content, Source: t.Source, Timestamp: t.Timestamp}))
	}
}
