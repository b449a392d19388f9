package cmd

import (
	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/store"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore factory defaults and persist",
	Long: `Overwrite the entire image with compiled-in defaults and persist it.

Example:
  persistctl reset`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		st.Defaults()
		if err := st.Persist(); err != nil {
			cmd.Printf("Error persisting: %v\n", err)
			return
		}
		cmd.Println("Factory defaults restored and persisted")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
