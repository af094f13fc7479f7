package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raako71/RClone-Diff/rclone"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

var remotesCmd = &cobra.Command{
	Use:   "remotes",
	Short: "List configured remotes and whether they are usable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := rclone.NewConfigStore(newRunner())

		remotes, err := store.ListRemotes(cmd.Context())
		if err != nil {
			return err
		}

		// the local filesystem is always available
		printRemote(fs.LocalRemote, true)

		for _, remote := range remotes {
			printRemote(remote, rclone.IsUsable(cmd.Context(), store, remote))
		}

		return nil
	},
}

func printRemote(remote string, usable bool) {
	fmt.Printf("%-24s", remote)
	if usable {
		_, _ = successColor.Println("Valid")
	} else {
		_, _ = errorColor.Println("Invalid")
	}
}

func init() {
	rootCmd.AddCommand(remotesCmd)
}
