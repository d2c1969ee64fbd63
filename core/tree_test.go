package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmookj/network/core"
)

// buildChainTree creates the tree O→N→J→L→E→I.
func buildChainTree() *core.Tree[int] {
	tr := core.NewTree("O", 0)
	labels := []string{"O", "N", "J", "L", "E", "I"}
	for i := 1; i < len(labels); i++ {
		tr.AppendNode(labels[i-1], labels[i], 0)
	}

	return tr
}

// buildBranchingTree creates:
//
//	    R
//	   / \
//	  A   B
//	 / \   \
//	C   D   E
func buildBranchingTree() *core.Tree[int] {
	tr := core.NewTree("R", 0)
	tr.AppendNode("R", "A", 0)
	tr.AppendNode("R", "B", 0)
	tr.AppendNode("A", "C", 0)
	tr.AppendNode("A", "D", 0)
	tr.AppendNode("B", "E", 0)

	return tr
}

func TestTree_RootAndSize(t *testing.T) {
	tr := buildChainTree()
	assert.Equal(t, "O", tr.Root().Label())
	assert.Equal(t, 6, tr.Size())
	assert.Equal(t, []string{"O", "N", "J", "L", "E", "I"}, tr.Labels())
}

func TestTree_PathDepthAndBreadthAgree(t *testing.T) {
	tr := buildChainTree()
	want := []string{"O", "N", "J", "L", "E", "I"}

	assert.Equal(t, want, tr.Path("I", core.DepthFirst))
	assert.Equal(t, want, tr.Path("I", core.BreadthFirst))
}

func TestTree_PathOnBranchingTree(t *testing.T) {
	tr := buildBranchingTree()

	for _, target := range []string{"R", "A", "B", "C", "D", "E"} {
		depth := tr.Path(target, core.DepthFirst)
		breadth := tr.Path(target, core.BreadthFirst)
		assert.Equal(t, depth, breadth, "both methods must find the unique path to %s", target)
		assert.Equal(t, "R", depth[0], "every path starts at the root")
		assert.Equal(t, target, depth[len(depth)-1])
	}

	assert.Equal(t, []string{"R", "A", "D"}, tr.Path("D", core.DepthFirst))
	assert.Equal(t, []string{"R", "B", "E"}, tr.Path("E", core.BreadthFirst))
}

func TestTree_PathToRoot(t *testing.T) {
	tr := buildBranchingTree()
	assert.Equal(t, []string{"R"}, tr.Path("R", core.DepthFirst))
	assert.Equal(t, []string{"R"}, tr.Path("R", core.BreadthFirst))
}

func TestTree_PathToAbsentIsEmpty(t *testing.T) {
	tr := buildChainTree()
	assert.Empty(t, tr.Path("ghost", core.DepthFirst))
	assert.Empty(t, tr.Path("ghost", core.BreadthFirst))
}

func TestTree_AncestorDescendant(t *testing.T) {
	tr := buildChainTree()

	assert.True(t, tr.IsAncestorOf("N", "E"))
	assert.True(t, tr.IsDescendantOf("E", "N"))
	assert.True(t, tr.IsAncestorOf("O", "I"), "root is an ancestor of every node")
	assert.False(t, tr.IsAncestorOf("E", "N"), "relation is directional")
	assert.False(t, tr.IsDescendantOf("N", "E"))
}

func TestTree_AncestorNotReflexive(t *testing.T) {
	tr := buildChainTree()
	assert.False(t, tr.IsAncestorOf("J", "J"), "a node is not its own ancestor")
	assert.False(t, tr.IsDescendantOf("J", "J"))
}

func TestTree_AncestorAbsentLabels(t *testing.T) {
	tr := buildChainTree()
	assert.False(t, tr.IsAncestorOf("ghost", "I"))
	assert.False(t, tr.IsAncestorOf("O", "ghost"))
}

func TestTree_AppendDuplicateIsNoop(t *testing.T) {
	tr := buildBranchingTree()
	size := tr.Size()

	tr.AppendNode("E", "A", 0) // A already exists elsewhere in the tree
	assert.Equal(t, size, tr.Size())
	p, ok := tr.Parent("A")
	assert.True(t, ok)
	assert.Equal(t, "R", p, "original parent link must survive")
}

func TestTree_AppendUnderAbsentParentIsNoop(t *testing.T) {
	tr := buildBranchingTree()
	size := tr.Size()

	tr.AppendNode("ghost", "X", 0)
	assert.Equal(t, size, tr.Size())
	assert.False(t, tr.Contains("X"))
}

func TestTree_Parent(t *testing.T) {
	tr := buildBranchingTree()

	p, ok := tr.Parent("C")
	assert.True(t, ok)
	assert.Equal(t, "A", p)

	_, ok = tr.Parent("R")
	assert.False(t, ok, "the root has no parent")

	_, ok = tr.Parent("ghost")
	assert.False(t, ok)
}

func TestTree_String(t *testing.T) {
	tr := core.NewTree("R", 0)
	tr.AppendNode("R", "A", 0)
	tr.AppendNode("R", "B", 0)
	tr.AppendNode("A", "C", 0)

	want := "# nodes: 4\n" +
		"Root: R\n" +
		"R : {A, B}\n" +
		"A : {C}\n" +
		"C : {}\n" +
		"B : {}\n"
	assert.Equal(t, want, tr.String())
}

func TestTree_DeepChainPaths(t *testing.T) {
	const n = 2000
	tr := core.NewTree("N0", 0)
	for i := 1; i < n; i++ {
		tr.AppendNode("N"+strconv.Itoa(i-1), "N"+strconv.Itoa(i), 0)
	}

	leaf := "N" + strconv.Itoa(n-1)
	depth := tr.Path(leaf, core.DepthFirst)
	breadth := tr.Path(leaf, core.BreadthFirst)
	assert.Len(t, depth, n)
	assert.Equal(t, depth, breadth)
	assert.True(t, tr.IsAncestorOf("N0", leaf))
}
