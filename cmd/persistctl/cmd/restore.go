package cmd

import (
	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/store"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <snapshot-id>",
	Short: "Restore an archived snapshot and persist it",
	Long: `Load an archived snapshot into the cache and persist it. The snapshot
must pass the checksum gate; a damaged archive entry is refused.

Example:
  persistctl restore 2zAbCdEfGhIjKlMnOpQrStUvWxY`,
	Args: cobra.ExactArgs(1),
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

		im, err := ar.Get(args[0])
		if err != nil {
			cmd.Printf("Error loading snapshot: %v\n", err)
			return
		}

		if err := st.LoadImage(*im); err != nil {
			cmd.Printf("Error adopting snapshot: %v\n", err)
			return
		}
		if err := st.Persist(); err != nil {
			cmd.Printf("Error persisting: %v\n", err)
			return
		}
		cmd.Printf("Snapshot %s restored and persisted\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
