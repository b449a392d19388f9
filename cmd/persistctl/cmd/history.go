package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived snapshots, newest first",
	Long: `List archived snapshots, newest first.

Example:
  persistctl history`,
	Run: func(cmd *cobra.Command, args []string) {
		ar, err := openConfiguredArchive(cmd)
		if err != nil {
			cmd.Printf("Error opening snapshot archive: %v\n", err)
			return
		}
		defer ar.Close()

		infos, err := ar.List()
		if err != nil {
			cmd.Printf("Error listing snapshots: %v\n", err)
			return
		}
		if len(infos) == 0 {
			cmd.Println("No snapshots")
			return
		}

		for _, info := range infos {
			created := time.Unix(info.CreatedAt, 0).UTC().Format(time.RFC3339)
			cmd.Printf("%s  %s\n", info.ID, created)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
