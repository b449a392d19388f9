/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/config"
	"github.com/radioconsole/persist/pkg/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "persistctl",
	Short: "Manage a checksum-validated radio settings image",
	Long: `persistctl manages a radio settings image backed by a file standing
in for the device's battery-backed RAM. Every read goes through a checksum
gate; a corrupt image falls back to compiled-in defaults.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init only writes the config file; no store involved yet.
		if cmd.Name() == "init" {
			return nil
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		backing, err := store.NewFileBacking(store.FileBackingConfig{
			Path:    cfg.BackingPath,
			UseMmap: cfg.UseMmap,
		})
		if err != nil {
			return err
		}
		st, err := store.NewSettingsStore(store.SettingsStoreConfig{Backing: backing})
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		if err := st.Open(); err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		if st.Stats().IntegrityFailures > 0 {
			fmt.Println("Image failed checksum validation; using defaults")
		}

		// Store in command context
		ctx := context.WithValue(cmd.Context(), "config", cfg)
		ctx = context.WithValue(ctx, "store", st)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st, ok := cmd.Context().Value("store").(*store.SettingsStore); ok {
			return st.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("backing", "b", "", "Backing image file (overrides config)")
	rootCmd.PersistentFlags().Bool("no-mmap", false, "Use read/write syscalls instead of mmap")
}

// resolveConfig loads the config file when present and applies flag overrides.
// A missing default config is not an error; compiled-in defaults apply.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(path) {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if explicit {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if backing, _ := cmd.Flags().GetString("backing"); backing != "" {
		cfg.BackingPath = backing
	}
	if noMmap, _ := cmd.Flags().GetBool("no-mmap"); noMmap {
		cfg.UseMmap = false
	}
	return cfg, nil
}
