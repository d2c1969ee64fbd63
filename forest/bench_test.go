package forest_test

import (
	"fmt"
	"testing"

	"github.com/cmookj/network/core"
	"github.com/cmookj/network/forest"
)

// BenchmarkBuild_Chain10000 measures forest construction on a linear
// chain N0 → N1 → ... → N10000. Rooted first-created, the whole chain
// becomes a single spanning tree of depth 10,000, exercising the
// iterative traversal stack.
func BenchmarkBuild_Chain10000(b *testing.B) {
	g := core.NewDigraph[int]()
	for i := 0; i < 10000; i++ {
		current := fmt.Sprintf("N%d", i)
		next := fmt.Sprintf("N%d", i+1)
		g.CreateNode(current, i)
		g.CreateNode(next, i+1)
		g.ConnectNode(current, next)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f, err := forest.Build(g, forest.WithRootOrder(forest.FirstCreated))
		if err != nil {
			b.Fatal(err)
		}
		if len(f.Trees) != 1 {
			b.Fatalf("expected a single tree, got %d", len(f.Trees))
		}
	}
}

// BenchmarkBuild_Cycle1000 measures classification on a 1,000-node
// ring, where the closing edge forces an ancestor walk over the full
// tree depth.
func BenchmarkBuild_Cycle1000(b *testing.B) {
	const n = 1000
	g := core.NewDigraph[int]()
	for i := 0; i < n; i++ {
		g.CreateNode(fmt.Sprintf("N%d", i), i)
	}
	for i := 0; i < n; i++ {
		g.ConnectNode(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+1)%n))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f, err := forest.Build(g)
		if err != nil {
			b.Fatal(err)
		}
		if len(f.BackArcs) != 1 {
			b.Fatalf("expected one back arc, got %d", len(f.BackArcs))
		}
	}
}
