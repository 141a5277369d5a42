package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Boot the kernel and report whether the configuration is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, traceID, err := app.boot(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d service definition(s), %d parameter(s) (boot %s)\n", len(container.Definitions()), len(container.Parameters()), traceID)
			return nil
		},
	}
}
