package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"template-connector/internal/connector"
	"template-connector/internal/logger"
	"template-connector/internal/plugin"
	"template-connector/internal/result"
)

var (
	configFile    string
	secretsFile   string
	outputFormat  string
	strictActions bool
	logLevel      string
	describe      bool
)

var rootCmd = &cobra.Command{
	Use:   connector.Name,
	Short: "Template connector for a REST product",
	Long: `Template connector for a REST product.

Without a subcommand the connector reads one JSON request from stdin,
runs it and writes the JSON response to stdout, which is how the host
invokes it. Run with --describe to print the supported actions.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel != "" {
			return logger.SetLevel(logLevel)
		}
		return nil
	},
	RunE: serveProtocol,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML asset configuration file")
	rootCmd.PersistentFlags().StringVar(&secretsFile, "secrets-file", "", "path to .env-style secrets file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table or json")
	rootCmd.PersistentFlags().BoolVar(&strictActions, "strict", false, "fail on unsupported action identifiers")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	rootCmd.Flags().BoolVar(&describe, "describe", false, "print connector metadata as JSON and exit")
}

func serveProtocol(cmd *cobra.Command, args []string) error {
	if describe {
		return plugin.WriteJSON(cmd.OutOrStdout(), plugin.Describe{
			Name:    connector.Name,
			Version: connector.Version,
			Actions: connector.New(connectorOptions()...).Actions(),
		})
	}

	return plugin.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
		func(ctx context.Context, req plugin.Request) *plugin.Response {
			// The host normally sends the config; local sources are only
			// read when it does not.
			if len(req.Config) == 0 {
				fallback, err := loadAssetConfig()
				if err != nil {
					return &plugin.Response{
						ID:     req.ID,
						Action: req.Action,
						Status: result.Failure.String(),
						Error:  err.Error(),
					}
				}
				req.Config = fallback
			}
			return connector.Run(ctx, req, connectorOptions()...)
		})
}

func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
