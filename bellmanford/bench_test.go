package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sproute/bellmanford"
	"github.com/katalvlaran/sproute/topology"
)

// BenchmarkCompute_Chain measures a linear chain of N links.
func BenchmarkCompute_Chain(b *testing.B) {
	const N = 10000
	vs := make([]topology.SwitchID, N+1)
	links := make([]topology.Link, N)
	for i := 0; i <= N; i++ {
		vs[i] = topology.SwitchID(i)
		if i < N {
			links[i] = topology.Link{Src: topology.SwitchID(i), Dst: topology.SwitchID(i + 1)}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.Compute(vs, links, 0)
	}
}

// BenchmarkCompute_RandomSparse measures a random graph with average out-degree 4,
// roughly the shape of a datacenter fabric.
func BenchmarkCompute_RandomSparse(b *testing.B) {
	const V, deg = 2000, 4
	rng := rand.New(rand.NewSource(1))
	vs := make([]topology.SwitchID, V)
	links := make([]topology.Link, 0, V*deg)
	for i := range vs {
		vs[i] = topology.SwitchID(i)
		for k := 0; k < deg; k++ {
			links = append(links, topology.Link{Src: topology.SwitchID(i), Dst: topology.SwitchID(rng.Intn(V))})
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.Compute(vs, links, 0)
	}
}

// BenchmarkTree_PathTo measures path reconstruction on a chain of 1000 links.
func BenchmarkTree_PathTo(b *testing.B) {
	const N = 1000
	vs := make([]topology.SwitchID, N+1)
	links := make([]topology.Link, N)
	for i := 0; i <= N; i++ {
		vs[i] = topology.SwitchID(i)
		if i < N {
			links[i] = topology.Link{Src: topology.SwitchID(i), Dst: topology.SwitchID(i + 1)}
		}
	}
	tree, err := bellmanford.Compute(vs, links, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.PathTo(N)
	}
}
