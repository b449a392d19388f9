package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/radioconsole/persist/pkg/store"
)

// flagCmd represents the flag command
var flagCmd = &cobra.Command{
	Use:   "flag <name> [true|false]",
	Short: "Get or set one UI flag",
	Long: `Get or set one UI flag bit. With one argument the flag is printed;
with two the flag is set and the image persisted.

Examples:
  persistctl flag stealth
  persistctl flag stealth true`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		// Get store from context
		st, ok := cmd.Context().Value("store").(*store.SettingsStore)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		flag, ok := store.FlagByName(args[0])
		if !ok {
			cmd.Printf("Unknown flag %q\n", args[0])
			return
		}

		if len(args) == 1 {
			cmd.Printf("%v\n", st.Flag(flag))
			return
		}

		value, err := strconv.ParseBool(args[1])
		if err != nil {
			cmd.Printf("Error: value must be true or false: %v\n", err)
			return
		}

		st.SetFlag(flag, value)
		if err := st.Persist(); err != nil {
			cmd.Printf("Error persisting: %v\n", err)
			return
		}
		cmd.Printf("%s = %v\n", args[0], value)
	},
}

func init() {
	rootCmd.AddCommand(flagCmd)
}
