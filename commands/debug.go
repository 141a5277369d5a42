package commands

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
	"github.com/MarcGrol/mobilpaybundle/services/mobilpay"
)

func newDebugContainerCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "debug:container",
		Short: "List service definitions and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, _, err := app.boot(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return printContainer(cmd.OutOrStdout(), container)
		},
	}
}

func printContainer(out io.Writer, container *mycontainer.Container) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPUBLIC")
	for _, id := range container.Definitions() {
		def, _ := container.GetDefinition(id)
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, def.Type, yesNo(def.Public))
	}

	aliases := container.Aliases()
	ids := make([]string, 0, len(aliases))
	for id := range aliases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "%s\talias for %q\t%s\n", id, aliases[id].Target, yesNo(aliases[id].Public))
	}

	return w.Flush()
}

func newDebugParametersCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "debug:parameters",
		Short: "List resolved container parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, _, err := app.boot(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			params := container.Parameters()
			names := make([]string, 0, len(params))
			for name := range params {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tVALUE")
			for _, name := range names {
				fmt.Fprintf(w, "%s\t%s\n", name, formatParameter(params[name]))
			}
			return w.Flush()
		},
	}
}

func formatParameter(value any) string {
	if ref, ok := value.(mycontainer.Reference); ok {
		return mycontainer.ReferencePrefix + ref.ID
	}
	return fmt.Sprint(value)
}

// debug:config shows the merged bundle configuration before placeholders are resolved.
func newDebugConfigCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "debug:config",
		Short: "Print the normalized netopia_mobilpay configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, _, err := app.kernel(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			config, err := mobilpay.NormalizeConfiguration(k.Configs(mobilpay.Alias))
			if err != nil {
				return err
			}

			values, err := config.ToForm()
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(values))
			for key := range values {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s: %s\n", mobilpay.Alias, key, values.Get(key))
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
