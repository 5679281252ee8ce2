// Package rootcmd wires the root cobra.Command for the heartlink binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	catalogcmd "github.com/ivankudzin/heartlink/cmd/heartlink/catalog"
	servecmd "github.com/ivankudzin/heartlink/cmd/heartlink/serve"
	"github.com/ivankudzin/heartlink/cmd/heartlink/shared"
)

func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "heartlink",
		Short:         "Heartlink dating prototype backed by mock data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.ConfigPath, "config", "",
		"Path to the YAML config (default: $APP_CONFIG, then configs/config.yaml)",
	)

	root.PersistentFlags().StringVar(
		&ctx.EnvFile, "env-file", "",
		"Dotenv file loaded before env overrides (default: .env, skipped when absent)",
	)

	root.AddCommand(
		servecmd.New(ctx).Cmd(),
		catalogcmd.New(ctx).Cmd(),
	)

	return root
}
