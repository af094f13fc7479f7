package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Insert_createsIntermediateDirectories(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("a/b/c/file.txt", StatusNew, 10)

	a := tree.Children["a"]
	assert.NotNil(a)
	assert.Equal(None, a.Status)

	b := a.Children["b"]
	assert.NotNil(b)

	c := b.Children["c"]
	assert.NotNil(c)

	leaf := c.Children["file.txt"]
	assert.NotNil(leaf)
	assert.True(leaf.IsLeaf())
	assert.Equal(StatusNew, leaf.Status)
	assert.Equal(uint64(10), leaf.Size)
}

func Test_Insert_reusesSharedPrefix(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("a/b/c/file.txt", StatusNew, 10)
	tree.Insert("a/b/d/file2.txt", StatusModified, 20)

	// still exactly one 'a' and one 'a/b'
	assert.Len(tree.Children, 1)
	a := tree.Children["a"]
	assert.Len(a.Children, 1)
	b := a.Children["b"]
	assert.Len(b.Children, 2)

	assert.NotNil(b.Children["c"].Children["file.txt"])
	assert.NotNil(b.Children["d"].Children["file2.txt"])
}

func Test_Insert_topLevelFile(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("x.txt", StatusDeleted, 5)

	leaf := tree.Children["x.txt"]
	assert.NotNil(leaf)
	assert.True(leaf.IsLeaf())
	assert.Equal(StatusDeleted, leaf.Status)
}

func Test_Insert_directoryEntryBeforeDescendant(t *testing.T) {
	assert := assert.New(t)

	// listings report directories as entries of their own
	tree := NewTree()
	tree.Insert("dir", StatusNew, 0)
	tree.Insert("dir/y.txt", StatusNew, 20)

	dir := tree.Children["dir"]
	assert.NotNil(dir)
	assert.False(dir.IsLeaf())
	assert.Equal(StatusNew, dir.Status)

	leaf := dir.Children["y.txt"]
	assert.NotNil(leaf)
	assert.True(leaf.IsLeaf())

	assert.Equal(uint64(20), tree.Aggregate())
	assert.Equal(uint64(20), dir.Size)
}

func Test_Insert_descendantBeforeDirectoryEntry(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("dir/y.txt", StatusNew, 20)
	tree.Insert("dir", StatusNew, 0)

	// the existing directory node is merged into, its children kept
	assert.Len(tree.Children, 1)
	dir := tree.Children["dir"]
	assert.Equal(StatusNew, dir.Status)
	assert.NotNil(dir.Children["y.txt"])

	assert.Equal(uint64(20), tree.Aggregate())
}

func Test_Aggregate_sumsLeavesRecursively(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("x.txt", StatusModified, 10)
	tree.Insert("dir/y.txt", StatusNew, 20)
	tree.Insert("z.txt", StatusDeleted, 5)

	total := tree.Aggregate()

	assert.Equal(uint64(35), total)
	assert.Equal(uint64(35), tree.Size)
	assert.Equal(uint64(20), tree.Children["dir"].Size)
	// leaf sizes untouched
	assert.Equal(uint64(10), tree.Children["x.txt"].Size)
}

func Test_Aggregate_isIdempotent(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("a/b/one.bin", StatusNew, 100)
	tree.Insert("a/two.bin", StatusNew, 50)
	tree.Insert("a/b/c/three.bin", StatusDeleted, 7)

	first := tree.Aggregate()
	second := tree.Aggregate()

	assert.Equal(first, second)
	assert.Equal(uint64(157), tree.Size)
	assert.Equal(uint64(157), tree.Children["a"].Size)
	assert.Equal(uint64(107), tree.Children["a"].Children["b"].Size)
}

func Test_Aggregate_emptyTree(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()

	assert.Equal(uint64(0), tree.Aggregate())
	assert.Equal(uint64(0), tree.Size)
	assert.Equal(0, tree.LeafCount())
}

func Test_SortedChildren_ordersByName(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("zeta.txt", StatusNew, 1)
	tree.Insert("alpha.txt", StatusNew, 1)
	tree.Insert("mid/inner.txt", StatusNew, 1)

	children := tree.SortedChildren()

	assert.Len(children, 3)
	assert.Equal("alpha.txt", children[0].Name)
	assert.Equal("mid", children[1].Name)
	assert.Equal("zeta.txt", children[2].Name)
}

func Test_LeafCount(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree()
	tree.Insert("a/b/one.bin", StatusNew, 1)
	tree.Insert("a/two.bin", StatusModified, 1)
	tree.Insert("three.bin", StatusDeleted, 1)

	assert.Equal(3, tree.LeafCount())
	assert.Equal(2, tree.Children["a"].LeafCount())
}
