/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/api"
	"github.com/radioconsole/persist/pkg/archive"
	"github.com/radioconsole/persist/pkg/config"
	"github.com/radioconsole/persist/pkg/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the settings REST API server",
	Long: `Start the REST API server over the settings store, with the snapshot
archive attached and Prometheus metrics on /metrics.

Examples:
  persistctl serve
  persistctl serve --port 9000 --api-key mysecretkey`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get store and config from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}
		cfg, ok := cmd.Context().Value("config").(*config.Config)
		if !ok {
			cmd.Println("Error: config not found in context")
			return
		}

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.APIKey = apiKey
		}

		// "auto" is the unconfigured sentinel; serve with a one-off key
		// rather than an unauthenticated API.
		if cfg.APIKey == "" || cfg.APIKey == "auto" {
			key, err := config.GenerateAPIKey(32)
			if err != nil {
				cmd.Printf("Error generating API key: %v\n", err)
				os.Exit(1)
			}
			cfg.APIKey = key
			cmd.Printf("Generated ephemeral API key: %s\n", key)
			cmd.Println("Run 'persistctl init' to persist a key in the config file")
		}

		ar, err := archive.Open(cfg.ArchiveDir)
		if err != nil {
			cmd.Printf("Error opening snapshot archive: %v\n", err)
			os.Exit(1)
		}
		defer ar.Close()

		serverConfig := api.ServerConfig{
			Bind:   cfg.Bind,
			Port:   cfg.Port,
			APIKey: cfg.APIKey,
		}
		if err := api.StartServer(st, ar, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
}
