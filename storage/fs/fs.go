package fs

// Common data structures for directory listings. Local files and remote
// objects are both reported through the same Entry shape, so we are using our
// own listing abstraction instead of os.FileInfo.
import (
	"strings"
	"time"
)

// LocalRemote is the pseudo-remote name denoting the local filesystem.
// It never appears in an rclone configuration file.
const LocalRemote = "local"

// Entry is one file or directory as reported by a listing provider.
type Entry struct {
	// Relative path, '/'-separated segments
	Path string
	// File name (last path segment)
	Name string
	// Size in bytes, 0 for directories
	Size uint64
	// When has the last writing to this entry occurred?
	// Compared for exact equality only; no tolerance window.
	ModTime time.Time
	IsDir   bool
}

// ListOptions control how a listing provider walks a location.
type ListOptions struct {
	Recursive bool
	// Fast-listing trades per-file metadata round trips for fewer requests
	// on remote backends.
	FastList bool
	// Glob patterns excluded from the listing
	Excludes []string
}

// Location addresses a directory tree, either on the local filesystem or on
// a named remote.
type Location struct {
	Remote string
	Path   string
}

func (l Location) IsLocal() bool {
	return l.Remote == "" || l.Remote == LocalRemote
}

// String renders the textual form understood by the external executor:
// "remote:path" for remotes, the bare path for local locations.
func (l Location) String() string {
	if l.IsLocal() {
		return l.Path
	}
	return l.Remote + ":" + l.Path
}

// ParseLocation splits "remote:path" into its parts. A missing remote prefix
// or a Windows drive letter ("C:\...") yields a local location.
func ParseLocation(s string) Location {
	i := strings.Index(s, ":")
	if i < 0 {
		return Location{Path: s}
	}
	// single letter before ':' is a drive, not a remote
	if i == 1 {
		return Location{Path: s}
	}
	remote := s[:i]
	path := s[i+1:]
	if remote == LocalRemote {
		return Location{Remote: LocalRemote, Path: path}
	}
	return Location{Remote: remote, Path: path}
}

// EnsureTrailingSlash coerces a path to end in '/' so that a plain name and
// its intended-directory counterpart are never treated as different prefixes.
// Drive roots like `C:\` are left alone.
func EnsureTrailingSlash(path string) string {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, ":\\") {
		return path
	}
	return path + "/"
}

// Normalized returns a copy of the location with a trailing-slash path.
func (l Location) Normalized() Location {
	l.Path = EnsureTrailingSlash(l.Path)
	return l
}
