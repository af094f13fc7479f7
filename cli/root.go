package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raako71/RClone-Diff/config"
)

var (
	// Global flags
	configFile string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "rclone-diff",
	Version: "dev",
	Short:   "Directory delta inspection and guarded sync for rclone remotes",
	Long: `rclone-diff compares a source and a destination directory tree, renders the
aggregated delta and only hands the destination over to rclone sync after an
explicit confirmation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configFile != "" {
			config.SetFile(configFile)
		}

		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug log level enabled")
		} else {
			log.SetLevel(config.GetInstance().Global().LogLevel())
		}
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug log; overwrites any configured log level")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the rclone-diff version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}
