package delta

import (
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// EntryMap indexes one side's listing by relative path. Keys are the paths
// exactly as reported by the listing provider; two entries denote the same
// object iff their paths are byte-equal.
type EntryMap map[string]fs.Entry

// NewEntryMap builds the per-side lookup from a flat listing.
func NewEntryMap(entries []fs.Entry) EntryMap {
	m := make(EntryMap, len(entries))
	for _, entry := range entries {
		m[entry.Path] = entry
	}
	return m
}

// Change is one classified path of the delta.
type Change struct {
	Path   string
	Status Status
	Size   uint64
}

// Compute classifies every path present on either side:
//
//	only in source                  -> New      (source size)
//	in both, mod times differ       -> Modified (source size)
//	in both, mod times equal        -> Unchanged
//	only in destination             -> Deleted  (destination size)
//
// Modification times are compared for exact equality. Output order follows
// map iteration and is unspecified; the classified set is deterministic for
// a given pair of maps.
func Compute(source, destination EntryMap) []Change {
	changes := make([]Change, 0, len(source)+len(destination))

	for path, src := range source {
		dst, exists := destination[path]

		if !exists {
			changes = append(changes, Change{Path: path, Status: StatusNew, Size: src.Size})
			continue
		}

		if !src.ModTime.Equal(dst.ModTime) {
			changes = append(changes, Change{Path: path, Status: StatusModified, Size: src.Size})
		} else {
			changes = append(changes, Change{Path: path, Status: StatusUnchanged, Size: src.Size})
		}
	}

	for path, dst := range destination {
		if _, exists := source[path]; !exists {
			changes = append(changes, Change{Path: path, Status: StatusDeleted, Size: dst.Size})
		}
	}

	return changes
}
