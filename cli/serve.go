package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/bytefmt"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raako71/RClone-Diff/config"
	"github.com/raako71/RClone-Diff/metrics"
	fs "github.com/raako71/RClone-Diff/storage/fs"
	"github.com/raako71/RClone-Diff/web"
)

var serveNonInteractive bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Periodically compare the configured locations and expose the delta over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serveCfg := config.GetInstance().Serve()

		if serveCfg.Source() == "" || serveCfg.Destination() == "" {
			return fmt.Errorf("serve requires both source and destination in the serve section of the configuration file")
		}

		source := fs.ParseLocation(serveCfg.Source())
		destination := fs.ParseLocation(serveCfg.Destination())

		runner := newRunner()
		global := config.GetInstance().Global()

		web.GetInstance().Configure(
			newEngine(runner, global.FastList(), global.Excludes()),
			newOrchestrator(runner),
			source,
			destination,
		)

		configureTerminal()
		scheduleComparisons(cmd.Context())

		web.StartServer()
		return nil
	},
}

// configureTerminal allows forcing a comparison with 'r' and exiting with
// 'q' while running in the foreground.
func configureTerminal() {
	if serveNonInteractive {
		return
	}

	// set up termbox, @see https://github.com/nsf/termbox-go/blob/master/_demos/raw_input.go
	err := termbox.Init()

	if err != nil {
		log.Warnf("Unable to run in interactive mode: %s", err)
		return
	}

	// start goroutine to continuously poll the keyboard
	go func() {
		for {
			var current string
			var data [64]byte

			// we have to poll the raw events; normal events don't include escape sequences
			switch ev := termbox.PollRawEvent(data[:]); ev.Type {
			case termbox.EventRaw:
				d := data[:ev.N]
				current = fmt.Sprintf("%q", d)

				if current == `"\x12"` /* Ctrl+R */ || current == `"r"` {
					log.Printf("Forcing comparison...")
					runComparison(context.Background())
				} else if current == `"\x1b"` /* ESC */ || current == `"q"` || current == `"\x03"` {
					log.Printf("Exiting...")
					termbox.Close()
					os.Exit(0)
				}
			case termbox.EventError:
				panic(ev.Err)
			}
		}
	}()
}

func scheduleComparisons(ctx context.Context) {
	serveCfg := config.GetInstance().Serve()

	go func() {
		runComparison(ctx)

		for {
			var wait time.Duration
			if schedule := serveCfg.Schedule(); schedule != nil {
				wait = time.Until(schedule.Next(time.Now()))
			} else {
				wait = serveCfg.UpdateInterval()
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
				runComparison(ctx)
			}
		}
	}()
}

func runComparison(ctx context.Context) {
	result, err := web.GetInstance().Compare(ctx)
	if err != nil {
		log.Errorf("Scheduled comparison failed: %s", err)
		return
	}

	threshold := config.GetInstance().Global().WarnDeltaBytes()
	if threshold > 0 && result.TotalBytes > threshold {
		metrics.GetApplicationMetrics().SizeThresholdBreached()
		log.Warnf("Aggregated delta size %s exceeds the configured threshold of %s",
			bytefmt.ByteSize(result.TotalBytes), bytefmt.ByteSize(threshold))
	}
}

func init() {
	serveCmd.Flags().BoolVar(&serveNonInteractive, "non-interactive", false, "Disable the keyboard controls, e.g. when running as a service")

	rootCmd.AddCommand(serveCmd)
}
