package rclone

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// IsUsable reports whether a remote can be used for a comparison. The local
// pseudo-remote is always usable without consulting the store. Any other
// name must be describable with a recognizable type declaration; every store
// failure means "not usable", never an error.
func IsUsable(ctx context.Context, store Store, remote string) bool {
	if remote == fs.LocalRemote {
		return true
	}

	if store == nil {
		return false
	}

	description, err := store.Describe(ctx, remote)
	if err != nil {
		log.Debugf("Remote %#q is not usable: %s", remote, err)
		return false
	}

	return strings.Contains(description, "type =")
}
