package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"template-connector/internal/connector"
	"template-connector/internal/plugin"
	"template-connector/internal/result"
)

var (
	paramJSON string
	runID     string
)

var runCmd = &cobra.Command{
	Use:   "run <action>",
	Short: "Run one action against the configured asset",
	Args:  cobra.ExactArgs(1),
	RunE:  runAction,
}

func init() {
	runCmd.Flags().StringVar(&paramJSON, "param", "{}", "JSON parameters for the action")
	runCmd.Flags().StringVar(&runID, "id", "", "request id (generated when empty)")
	rootCmd.AddCommand(runCmd)
}

func runAction(cmd *cobra.Command, args []string) error {
	var param map[string]any
	if err := json.Unmarshal([]byte(paramJSON), &param); err != nil {
		return fmt.Errorf("parsing param JSON: %w", err)
	}

	cfg, err := loadAssetConfig()
	if err != nil {
		return err
	}

	resp := connector.Run(cmd.Context(), plugin.Request{
		ID:     runID,
		Action: args[0],
		Input:  param,
		Config: cfg,
	}, connectorOptions()...)

	if err := plugin.WriteJSON(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if resp.Status == result.Failure.String() {
		return fmt.Errorf("action %q failed: %s", args[0], resp.Error)
	}
	return nil
}
