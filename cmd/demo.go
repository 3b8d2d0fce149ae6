package cmd

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/go-dep/app"
	"github.com/km-arc/go-dep/framework/config"
	"github.com/km-arc/go-dep/framework/container"
	"github.com/km-arc/go-dep/framework/logging"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Register the example services and call them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(envFiles...)
			log, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			reg := container.New(
				container.WithChecked(cfg.Container.Checked),
				container.WithLogger(log.Named("container")),
			)
			return app.Demo(cmd.OutOrStdout(), reg)
		},
	}
}
