package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-dep/app"
	foundation "github.com/km-arc/go-dep/framework/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the example API",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := foundation.New(envFiles...)
			if err != nil {
				return err
			}
			defer func() { _ = application.Logger().Sync() }()

			if err := application.Register(&app.AppServiceProvider{Out: os.Stdout}); err != nil {
				return err
			}
			app.Routes(application.Router(), application.Registry)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return application.Run(ctx)
		},
	}
}
