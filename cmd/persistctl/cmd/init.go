/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the persistctl config file with a generated API key",
	Long: `Write the persistctl config file with a freshly generated API key.

Examples:
  persistctl init
  persistctl init --backing /var/lib/persistctl/backup.img`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.DefaultConfigPath()
		}
		backing, _ := cmd.Flags().GetString("backing")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(path) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", path)
			return
		}

		cfg, err := config.BootstrapConfig(path, backing)
		if err != nil {
			cmd.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Config written to %s\n", path)
		cmd.Printf("Backing image: %s\n", cfg.BackingPath)
		cmd.Printf("API key: %s\n", cfg.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
