package storage

import (
	"context"

	log "github.com/sirupsen/logrus"

	fs "github.com/raako71/RClone-Diff/storage/fs"
	"github.com/raako71/RClone-Diff/storage/provider"
)

// Lister obtains the flat listing of a location. Implementations report
// failures as rclone.ListingError.
type Lister interface {
	List(ctx context.Context, location fs.Location, opts fs.ListOptions) ([]fs.Entry, error)
}

// Selector picks the listing client for a location: a native walker for the
// local filesystem, a direct S3 client for remotes with configured
// credentials, and the external binary for everything else.
type Selector struct {
	// Fallback handles every location without a native client.
	Fallback Lister
	// LocalWalker enables the in-process filesystem walker.
	LocalWalker bool
	// S3 maps remote names to direct S3 listing clients.
	S3 map[string]*provider.S3Lister
}

func (s *Selector) ForLocation(location fs.Location) Lister {
	if location.IsLocal() {
		if s.LocalWalker {
			return &provider.LocalLister{}
		}
		return s.Fallback
	}

	if native, ok := s.S3[location.Remote]; ok {
		log.Debugf("Using native S3 listing for remote %#q", location.Remote)
		return native
	}

	return s.Fallback
}
