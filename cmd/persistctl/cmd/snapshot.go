package cmd

import (
	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/archive"
	"github.com/radioconsole/persist/pkg/config"
	"github.com/radioconsole/persist/pkg/store"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Archive the current settings image",
	Long: `Seal the current cached image and append it to the snapshot archive,
so a known-good configuration can be restored later.

Example:
  persistctl snapshot`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		ar, err := openConfiguredArchive(cmd)
		if err != nil {
			cmd.Printf("Error opening snapshot archive: %v\n", err)
			return
		}
		defer ar.Close()

		im := st.Image()
		id, err := ar.Append(&im)
		if err != nil {
			cmd.Printf("Error archiving snapshot: %v\n", err)
			return
		}
		cmd.Printf("Snapshot %s archived\n", id)
	},
}

// openConfiguredArchive opens the snapshot archive at the configured directory.
func openConfiguredArchive(cmd *cobra.Command) (*archive.Archive, error) {
	cfg, ok := cmd.Context().Value("config").(*config.Config)
	if !ok {
		cfg = config.DefaultConfig()
	}
	return archive.Open(cfg.ArchiveDir)
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
