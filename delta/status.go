package delta

// Status classifies one path after comparing the source and destination
// listings. Unchanged entries are classified but never materialized in the
// tree, so the delta view only shows New, Modified and Deleted paths.
type Status string

const (
	StatusNew       Status = "New"
	StatusModified  Status = "Modified"
	StatusDeleted   Status = "Deleted"
	StatusUnchanged Status = "Unchanged"
)

// None marks a node that carries no status, i.e. a directory.
const None Status = ""
