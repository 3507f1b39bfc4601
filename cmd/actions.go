package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"template-connector/internal/connector"
	"template-connector/internal/plugin"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the supported actions",
	Args:  cobra.NoArgs,
	RunE:  listActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

func listActions(cmd *cobra.Command, args []string) error {
	defs := connector.New(connectorOptions()...).Actions()

	if outputFormat == "json" {
		return plugin.WriteJSON(cmd.OutOrStdout(), defs)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tREAD_ONLY\tDESCRIPTION")
	for _, d := range defs {
		fmt.Fprintf(w, "%s\t%v\t%s\n", d.Name, d.ReadOnly, d.Description)
	}
	return w.Flush()
}
