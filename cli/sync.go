package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	fs "github.com/raako71/RClone-Diff/storage/fs"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:   "sync <source> <destination>",
	Short: "Compare two trees, then make the destination match the source",
	Long: `sync runs a comparison first and shows the aggregated delta. The destination
is only modified after explicit confirmation, either interactively or with --yes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := fs.ParseLocation(args[0])
		destination := fs.ParseLocation(args[1])

		runner := newRunner()
		engine := newEngine(runner, fastListEnabled(), listExcludes())

		result, err := engine.Run(cmd.Context(), source, destination)
		if err != nil {
			return err
		}

		PrintTree(result.Root, 0)
		PrintSummary(result)

		if result.New == 0 && result.Modified == 0 && result.Deleted == 0 {
			PrintSuccess("Destination is already in sync")
			return nil
		}

		confirmed := syncYes
		if !confirmed {
			confirmed = askForConfirmation(result.Destination.String(), result.TotalBytes)
		}

		if !confirmed {
			PrintWarning("Sync aborted, destination left untouched")
			return nil
		}

		if err := newOrchestrator(runner).Run(cmd.Context(), result, confirmed); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Destination %s synced", result.Destination.String()))
		return nil
	},
}

func askForConfirmation(destination string, totalBytes uint64) bool {
	fmt.Printf("About to modify %s (%s delta). Continue? [y/N] ", destination, bytefmt.ByteSize(totalBytes))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	syncCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "Skip the interactive confirmation")
	syncCmd.Flags().BoolVar(&compareFastList, "fast-list", false, "Force fast listing on remote backends")
	syncCmd.Flags().BoolVar(&compareNoFastList, "no-fast-list", false, "Disable fast listing on remote backends")
	syncCmd.Flags().StringArrayVar(&compareExcludes, "exclude", nil, "Glob pattern to exclude from listings; overrides the configured patterns")

	rootCmd.AddCommand(syncCmd)
}
