package compare

import (
	"context"
	"errors"

	"github.com/raako71/RClone-Diff/metrics"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

var (
	// ErrNoComparison means the location pair has not been the subject of a
	// successful comparison run.
	ErrNoComparison = errors.New("no comparison result for this location pair")

	// ErrNotConfirmed means the caller has not explicitly confirmed the
	// destination mutation.
	ErrNotConfirmed = errors.New("sync requires explicit confirmation")
)

// SyncExecutor makes the destination match the source.
type SyncExecutor interface {
	Sync(ctx context.Context, source, destination fs.Location) error
}

// Orchestrator gates the irreversible sync behind a prior comparison and an
// explicit confirmation, then invokes the executor exactly once.
type Orchestrator struct {
	Executor SyncExecutor
}

func (o *Orchestrator) Run(ctx context.Context, result *Result, confirmed bool) error {
	if result == nil {
		return ErrNoComparison
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	metrics.GetApplicationMetrics().SyncStarted()

	if err := o.Executor.Sync(ctx, result.Source, result.Destination); err != nil {
		metrics.GetApplicationMetrics().SyncFailed()
		return err
	}

	return nil
}
