package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/api"
	"github.com/radioconsole/persist/pkg/store"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one settings field and persist",
	Long: `Set one settings field by name and persist the image. Values outside
a field's legal range are clipped before storing.

Example:
  persistctl set correction_ppb 2500`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		value, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			cmd.Printf("Error: value must be an integer: %v\n", err)
			return
		}

		stored, ok := api.WriteField(st, args[0], value)
		if !ok {
			cmd.Printf("Unknown field %q. Known fields: %s\n", args[0], knownFields())
			return
		}

		if err := st.Persist(); err != nil {
			cmd.Printf("Error persisting: %v\n", err)
			return
		}

		if stored != value {
			cmd.Printf("%s = %d (clipped from %d)\n", args[0], stored, value)
		} else {
			cmd.Printf("%s = %d\n", args[0], stored)
		}
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
