package provider

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/raako71/RClone-Diff/rclone"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// LocalLister walks the local filesystem directly instead of shelling out.
type LocalLister struct{}

func (c *LocalLister) List(ctx context.Context, location fs.Location, opts fs.ListOptions) ([]fs.Entry, error) {
	root := location.Path

	var entries []fs.Entry
	err := scanDir(ctx, root, "", opts, &entries)
	if err != nil {
		return nil, &rclone.ListingError{Location: location.String(), Err: err}
	}

	log.Debugf("Walked %d entries below %#q", len(entries), root)

	return entries, nil
}

func scanDir(ctx context.Context, root, relative string, opts fs.ListOptions, entries *[]fs.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dirEntries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(relative)))
	if err != nil {
		return err
	}

	for _, dirEntry := range dirEntries {
		relPath := dirEntry.Name()
		if relative != "" {
			relPath = relative + "/" + dirEntry.Name()
		}

		if Excluded(relPath, opts.Excludes) {
			log.Debugf("Excluding %#q from listing", relPath)
			continue
		}

		if dirEntry.IsDir() {
			info, err := dirEntry.Info()
			if err != nil {
				log.Errorf("Failed to get directory info for %s, %v", relPath, err)
				continue
			}

			*entries = append(*entries, fs.Entry{
				Path:    relPath,
				Name:    dirEntry.Name(),
				ModTime: info.ModTime(),
				IsDir:   true,
			})

			if opts.Recursive {
				if err := scanDir(ctx, root, relPath, opts, entries); err != nil {
					return err
				}
			}
			continue
		}

		info, err := dirEntry.Info()
		if err != nil {
			log.Errorf("Failed to get file info for %s, %v", relPath, err)
			continue
		}

		*entries = append(*entries, fs.Entry{
			Path:    relPath,
			Name:    dirEntry.Name(),
			Size:    uint64(info.Size()),
			ModTime: info.ModTime(),
		})
	}

	return nil
}
