package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/raako71/RClone-Diff/config"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

var (
	compareFastList   bool
	compareNoFastList bool
	compareExcludes   []string
	compareJson       bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <source> <destination>",
	Short: "Compare two directory trees and render the aggregated delta",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := fs.ParseLocation(args[0])
		destination := fs.ParseLocation(args[1])

		engine := newEngine(newRunner(), fastListEnabled(), listExcludes())

		result, err := engine.Run(cmd.Context(), source, destination)
		if err != nil {
			return err
		}

		if compareJson {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		PrintTree(result.Root, 0)
		PrintSummary(result)

		return nil
	},
}

func fastListEnabled() bool {
	if compareNoFastList {
		return false
	}
	if compareFastList {
		return true
	}
	return config.GetInstance().Global().FastList()
}

func listExcludes() []string {
	if len(compareExcludes) > 0 {
		return compareExcludes
	}
	return config.GetInstance().Global().Excludes()
}

func init() {
	compareCmd.Flags().BoolVar(&compareFastList, "fast-list", false, "Force fast listing on remote backends")
	compareCmd.Flags().BoolVar(&compareNoFastList, "no-fast-list", false, "Disable fast listing on remote backends")
	compareCmd.Flags().StringArrayVar(&compareExcludes, "exclude", nil, "Glob pattern to exclude from listings; overrides the configured patterns")
	compareCmd.Flags().BoolVar(&compareJson, "json", false, "Emit the full comparison result as JSON")

	rootCmd.AddCommand(compareCmd)
}
