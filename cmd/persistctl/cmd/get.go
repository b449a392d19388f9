package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/api"
	"github.com/radioconsole/persist/pkg/store"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <field>",
	Short: "Get one settings field",
	Long: `Get one settings field by name. Reading repairs out-of-range values
to their reset defaults in the cache.

Example:
  persistctl get tuned_frequency`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		value, ok := api.ReadField(st, args[0])
		if !ok {
			cmd.Printf("Unknown field %q. Known fields: %s\n", args[0], knownFields())
			return
		}
		cmd.Printf("%d\n", value)
	},
}

func knownFields() string {
	names := api.FieldNames()
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(getCmd)
}
