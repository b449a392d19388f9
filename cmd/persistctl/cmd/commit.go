package cmd

import (
	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/store"
)

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Seal and write the cached image to the backing file",
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		if err := st.Persist(); err != nil {
			cmd.Printf("Error persisting: %v\n", err)
			return
		}
		cmd.Println("Image persisted")
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
