package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"template-connector/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the asset configuration",
	Long:  "Loads --config, --secrets-file and TEMPLATE_CONNECTOR_* variables and checks the result without contacting the product.",
	Args:  cobra.NoArgs,
	RunE:  validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Sources{File: configFile, SecretsFile: secretsFile})
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Asset configuration for %s is valid.\n", cfg.Host)
	return nil
}
