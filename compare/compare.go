package compare

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/raako71/RClone-Diff/delta"
	"github.com/raako71/RClone-Diff/metrics"
	"github.com/raako71/RClone-Diff/storage"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// Result is the artifact of one comparison run: the aggregated delta tree
// plus the counts the CLI, the web API and the metrics all render from.
type Result struct {
	Source      fs.Location `json:"source"`
	Destination fs.Location `json:"destination"`

	Root *delta.Node `json:"root"`

	SourceEntries      int `json:"sourceEntries"`
	DestinationEntries int `json:"destinationEntries"`

	New       int `json:"new"`
	Modified  int `json:"modified"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`

	NewBytes      uint64 `json:"newBytes"`
	ModifiedBytes uint64 `json:"modifiedBytes"`
	DeletedBytes  uint64 `json:"deletedBytes"`
	// TotalBytes is the aggregated root size: every materialized leaf counts.
	TotalBytes uint64 `json:"totalBytes"`

	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// Engine drives one comparison run: fetch both listings, classify, build and
// aggregate the tree. Each run owns its entry maps and tree exclusively.
type Engine struct {
	Listers *storage.Selector
	Options fs.ListOptions
}

// Run compares the two locations. Paths are coerced to a trailing slash
// before any listing is fetched. The two fetches have no ordering dependency
// and run concurrently; classification strictly waits for both.
func (e *Engine) Run(ctx context.Context, source, destination fs.Location) (*Result, error) {
	source = source.Normalized()
	destination = destination.Normalized()

	metrics.GetApplicationMetrics().ComparisonStarted()
	startedAt := time.Now()

	log.Infof("Comparing %#q against %#q", source.String(), destination.String())

	var sourceEntries, destinationEntries []fs.Entry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sourceEntries, err = e.Listers.ForLocation(source).List(gctx, source, e.Options)
		return err
	})
	g.Go(func() error {
		var err error
		destinationEntries, err = e.Listers.ForLocation(destination).List(gctx, destination, e.Options)
		return err
	})

	if err := g.Wait(); err != nil {
		metrics.GetApplicationMetrics().ComparisonFailed()
		return nil, err
	}

	result := &Result{
		Source:             source,
		Destination:        destination,
		SourceEntries:      len(sourceEntries),
		DestinationEntries: len(destinationEntries),
		StartedAt:          startedAt,
	}

	changes := delta.Compute(
		delta.NewEntryMap(sourceEntries),
		delta.NewEntryMap(destinationEntries),
	)

	tree := delta.NewTree()
	for _, change := range changes {
		switch change.Status {
		case delta.StatusNew:
			result.New++
			result.NewBytes += change.Size
		case delta.StatusModified:
			result.Modified++
			result.ModifiedBytes += change.Size
		case delta.StatusDeleted:
			result.Deleted++
			result.DeletedBytes += change.Size
		case delta.StatusUnchanged:
			result.Unchanged++
			continue
		}

		tree.Insert(change.Path, change.Status, change.Size)
	}

	result.TotalBytes = tree.Aggregate()
	result.Root = tree
	result.Duration = time.Since(startedAt)

	updateMetrics(result)

	log.Infof("Comparison finished in %s: %d new, %d modified, %d deleted, %d unchanged",
		result.Duration.Round(time.Millisecond), result.New, result.Modified, result.Deleted, result.Unchanged)

	return result, nil
}

func updateMetrics(result *Result) {
	m := metrics.GetComparisonMetric()
	m.UpdateListings(result.SourceEntries, result.DestinationEntries)
	m.UpdateStatus(string(delta.StatusNew), result.New, result.NewBytes)
	m.UpdateStatus(string(delta.StatusModified), result.Modified, result.ModifiedBytes)
	m.UpdateStatus(string(delta.StatusDeleted), result.Deleted, result.DeletedBytes)
	m.UpdateRun(result.StartedAt, result.Duration)
}
