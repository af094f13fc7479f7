package delta

import (
	"sort"
	"strings"
)

// Node is one element of the hierarchical delta view. Directories own their
// children in a name-indexed map; a node is a leaf iff it has no children and
// carries a status. Intermediate directories are created implicitly during
// insertion and never carry a status.
type Node struct {
	Name     string           `json:"name"`
	Status   Status           `json:"status,omitempty"`
	Size     uint64           `json:"size"`
	Children map[string]*Node `json:"children,omitempty"`
}

// NewTree returns an empty root. The tree is built fresh for every
// comparison run: insert-only, aggregated once, then handed to presentation.
func NewTree() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Insert splits path on '/' and walks from the root, creating an intermediate
// directory node per segment where none exists with that name (exact segment
// equality). The final segment carries status and size; when a node with that
// name already exists it is merged into, keeping its children. Listings
// report directories as entries of their own, so a directory and its
// descendants arrive in either order.
func (n *Node) Insert(path string, status Status, size uint64) {
	parts := strings.Split(path, "/")
	current := n

	for i := 0; i < len(parts)-1; i++ {
		next := current.Children[parts[i]]
		if next == nil {
			next = &Node{
				Name:     parts[i],
				Children: make(map[string]*Node),
			}
			current.Children[parts[i]] = next
		} else if next.Children == nil {
			next.Children = make(map[string]*Node)
		}
		current = next
	}

	leaf := parts[len(parts)-1]
	if existing := current.Children[leaf]; existing != nil {
		existing.Status = status
		existing.Size = size
		return
	}
	current.Children[leaf] = &Node{
		Name:   leaf,
		Status: status,
		Size:   size,
	}
}

// IsLeaf reports whether the node represents a single classified file.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0 && n.Status != None
}

// Aggregate sums descendant leaf sizes into every directory node in one
// post-order pass. Leaf sizes are left untouched, so re-running it on an
// already aggregated tree yields identical totals.
func (n *Node) Aggregate() uint64 {
	if n.IsLeaf() {
		return n.Size
	}

	var total uint64
	for _, child := range n.Children {
		total += child.Aggregate()
	}
	n.Size = total

	return total
}

// SortedChildren returns the children in name order for deterministic
// rendering and serialization.
func (n *Node) SortedChildren() []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})

	return children
}

// LeafCount reports the number of classified files below the node.
func (n *Node) LeafCount() int {
	if n.IsLeaf() {
		return 1
	}
	count := 0
	for _, child := range n.Children {
		count += child.LeafCount()
	}
	return count
}
