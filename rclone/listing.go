package rclone

import (
	"context"
	"encoding/json"
	"path"
	"time"

	log "github.com/sirupsen/logrus"

	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// Provider obtains directory listings through `rclone lsjson`.
type Provider struct {
	runner *Runner
}

func NewProvider(runner *Runner) *Provider {
	return &Provider{runner: runner}
}

// lsjsonItem mirrors one element of the lsjson output array.
type lsjsonItem struct {
	Path    string `json:"Path"`
	Name    string `json:"Name"`
	Size    int64  `json:"Size"`
	ModTime string `json:"ModTime"`
	IsDir   bool   `json:"IsDir"`
}

// List returns the flat listing of a location. Transport and decode failures
// are reported as ListingError and abort the comparison run.
func (p *Provider) List(ctx context.Context, location fs.Location, opts fs.ListOptions) ([]fs.Entry, error) {
	args := []string{"lsjson"}
	if opts.Recursive {
		args = append(args, "--recursive")
	}
	if opts.FastList {
		args = append(args, "--fast-list")
	}
	for _, pattern := range opts.Excludes {
		args = append(args, "--exclude", pattern)
	}
	args = append(args, location.String())

	out, err := p.runner.Run(ctx, args...)
	if err != nil {
		return nil, &ListingError{Location: location.String(), Err: err}
	}

	entries, err := decodeEntries(out)
	if err != nil {
		return nil, &ListingError{Location: location.String(), Err: err}
	}

	log.Debugf("Retrieved %d items from %#q", len(entries), location.String())

	return entries, nil
}

func decodeEntries(data []byte) ([]fs.Entry, error) {
	var items []lsjsonItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	entries := make([]fs.Entry, 0, len(items))
	for _, item := range items {
		entry := fs.Entry{
			Path:  item.Path,
			Name:  item.Name,
			IsDir: item.IsDir,
		}
		if entry.Name == "" {
			entry.Name = path.Base(item.Path)
		}

		// rclone reports -1 for unknown sizes; treat those as 0
		if item.Size > 0 {
			entry.Size = uint64(item.Size)
		}

		modTime, err := time.Parse(time.RFC3339Nano, item.ModTime)
		if err != nil {
			return nil, err
		}
		entry.ModTime = modTime

		entries = append(entries, entry)
	}

	return entries, nil
}
