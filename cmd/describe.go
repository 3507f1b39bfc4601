package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"template-connector/internal/connector"
	"template-connector/internal/plugin"
	"template-connector/internal/types"
)

var describeCmd = &cobra.Command{
	Use:   "describe <action>",
	Short: "Show details of an action",
	Args:  cobra.ExactArgs(1),
	RunE:  describeAction,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func describeAction(cmd *cobra.Command, args []string) error {
	def, ok := connector.New(connectorOptions()...).Action(args[0])
	if !ok {
		return fmt.Errorf("action %q is not supported by %s", args[0], connector.Name)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return plugin.WriteJSON(out, def)
	}

	fmt.Fprintf(out, "Name:        %s\n", def.Name)
	fmt.Fprintf(out, "Description: %s\n", def.Description)
	fmt.Fprintf(out, "Read only:   %v\n", def.ReadOnly)

	if len(def.Input) > 0 {
		fmt.Fprintln(out, "\nParameters:")
		if err := writeFields(out, def.Input); err != nil {
			return err
		}
	}
	if len(def.Output) > 0 {
		fmt.Fprintln(out, "\nOutput:")
		if err := writeFields(out, def.Output); err != nil {
			return err
		}
	}
	return nil
}

func writeFields(out io.Writer, fields map[string]types.FieldDef) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FIELD\tTYPE\tREQUIRED\tDESCRIPTION")
	for _, name := range names {
		f := fields[name]
		fmt.Fprintf(w, "  %s\t%s\t%v\t%s\n", name, f.Type, f.Required, f.Description)
	}
	return w.Flush()
}
