package rclone

import (
	"context"

	log "github.com/sirupsen/logrus"

	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// Executor drives `rclone sync`, the one-directional reconciliation that
// mutates the destination to match the source.
type Executor struct {
	runner *Runner
}

func NewExecutor(runner *Runner) *Executor {
	return &Executor{runner: runner}
}

// Sync invokes the binary exactly once. There is no retry and no rollback;
// a failure carries the executor's raw diagnostic text.
func (e *Executor) Sync(ctx context.Context, source, destination fs.Location) error {
	log.Infof("Syncing %#q -> %#q", source.String(), destination.String())

	_, err := e.runner.Run(ctx, "sync", source.String(), destination.String())
	if err != nil {
		return &SyncError{
			Source:      source.String(),
			Destination: destination.String(),
			Err:         err,
		}
	}

	return nil
}
