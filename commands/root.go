// Package commands implements the mobilpay command line: it boots the application kernel
// from configuration files and prints what ended up in the service container.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/MarcGrol/mobilpaybundle/lib/myuuid"
)

const defaultConfigFile = "config/packages/netopia_mobilpay.yaml"

type Options struct {
	ConfigFiles []string
	RootDir     string
	EnvFile     string
}

func NewRootCommand(uuider myuuid.UUIDer) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "mobilpay",
		Short: "Inspect the Netopia mobilPay service wiring",
		Long: `mobilpay boots the application kernel with the netopia_mobilpay bundle and reports
on the resulting service container.

Configuration files are YAML documents keyed by bundle alias. Values may use
%parameter% and %env(NAME)% placeholders; variables from --env-file take
precedence over the process environment.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringArrayVarP(&opts.ConfigFiles, "config", "c", []string{defaultConfigFile}, "Configuration file, relative to the root dir (repeatable, later files win)")
	rootCmd.PersistentFlags().StringVar(&opts.RootDir, "root-dir", "", "Project directory (default current working directory)")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Optional .env file with environment variables")

	app := &application{
		opts:   opts,
		uuider: uuider,
	}
	rootCmd.AddCommand(
		newCheckCommand(app),
		newDebugContainerCommand(app),
		newDebugParametersCommand(app),
		newDebugConfigCommand(app),
	)

	return rootCmd
}
