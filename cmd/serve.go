package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"template-connector/internal/connector"
	"template-connector/internal/logger"
	"template-connector/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a local HTTP harness for the connector's actions",
	Args:  cobra.NoArgs,
	RunE:  serveHTTP,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func serveHTTP(cmd *cobra.Command, args []string) error {
	cfg, err := loadAssetConfig()
	if err != nil {
		return err
	}

	srv := server.NewServer(cfg, connectorOptions()...)
	addr := fmt.Sprintf(":%d", servePort)

	log := logger.Get()
	log.Info().Str("addr", addr).Msg("Starting connector harness")
	for _, def := range connector.New(connectorOptions()...).Actions() {
		log.Info().Msgf("  POST /actions/%s", def.Name)
	}
	return srv.ListenAndServe(addr)
}
