package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API for the web front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.HTTP.Addr
			}
			if app.Config.HTTP.JWTSecret == "" {
				return fmt.Errorf("serve needs a JWT secret: set [http] jwt_secret or SKILLSWAP_JWT_SECRET")
			}
			if app.Transcripts == nil {
				return fmt.Errorf("serve needs a transcript store")
			}
			gin.SetMode(gin.ReleaseMode)

			server := httpapi.NewServer(httpapi.NewRouterConfig(httpapi.Deps{
				Log:          app.logger().With("component", "http"),
				JWTSecret:    app.Config.HTTP.JWTSecret,
				CORSOrigins:  app.Config.HTTP.CORSOrigins,
				Bookings:     app.Bookings,
				Achievements: app.Achievements,
				Teachers:     app.Teachers,
				Profiles:     app.Profiles,
				Mentor:       app.Mentor,
				Transcripts:  app.Transcripts,
			}))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Listening on "+addr))
			return server.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
